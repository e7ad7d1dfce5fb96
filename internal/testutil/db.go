package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/database"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory SQLite database with the schema
// migrated. The database disappears when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		SQLitePath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
	}

	db, err := database.NewDatabase(cfg, zap.NewNop())
	require.NoError(t, err, "Failed to open in-memory test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// CreateTestFinch creates a finch with the given name
func CreateTestFinch(t *testing.T, db *gorm.DB, name string) *domain.Finch {
	t.Helper()

	finch := &domain.Finch{
		Name:    name,
		Color:   "Orange-cheeked",
		Size:    "Small",
		Habitat: "Grasslands",
	}
	require.NoError(t, db.Create(finch).Error)
	return finch
}

// CreateTestToy creates a toy with the given name
func CreateTestToy(t *testing.T, db *gorm.DB, name, color string) *domain.Toy {
	t.Helper()

	toy := &domain.Toy{Name: name, Color: color}
	require.NoError(t, db.Create(toy).Error)
	return toy
}

// CreateTestFeeding creates a feeding for the finch on the given day
func CreateTestFeeding(t *testing.T, db *gorm.DB, finchID uuid.UUID, date time.Time, meal domain.Meal) *domain.Feeding {
	t.Helper()

	feeding := &domain.Feeding{
		Date:    Day(date),
		Meal:    meal,
		FinchID: finchID,
	}
	require.NoError(t, db.Create(feeding).Error)
	return feeding
}

// CreateTestPhoto creates a photo record for the finch
func CreateTestPhoto(t *testing.T, db *gorm.DB, finchID uuid.UUID, key string) *domain.Photo {
	t.Helper()

	photo := &domain.Photo{
		URL:        "/static/finch-photos/" + key,
		StorageKey: key,
		FinchID:    finchID,
	}
	require.NoError(t, db.Create(photo).Error)
	return photo
}

// AssociateTestToy adds a row to the finch/toy relation
func AssociateTestToy(t *testing.T, db *gorm.DB, finchID, toyID uuid.UUID) {
	t.Helper()

	require.NoError(t, db.Create(&domain.FinchToy{FinchID: finchID, ToyID: toyID}).Error)
}

// Day truncates t to midnight UTC
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
