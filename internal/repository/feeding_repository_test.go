package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/repository"
	"github.com/straye-as/finch-collector/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedingRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFeedingRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &domain.Feeding{Date: day.AddDate(0, 0, -2), Meal: domain.MealLunch, FinchID: finch.ID}))
	require.NoError(t, repo.Create(ctx, &domain.Feeding{Date: day, Meal: domain.MealBreakfast, FinchID: finch.ID}))
	require.NoError(t, repo.Create(ctx, &domain.Feeding{Date: day, Meal: domain.MealDinner, FinchID: finch.ID}))

	t.Run("list is newest first", func(t *testing.T) {
		feedings, err := repo.ListByFinch(ctx, finch.ID)
		require.NoError(t, err)
		require.Len(t, feedings, 3)
		assert.True(t, feedings[0].Date.Equal(day))
		assert.True(t, feedings[2].Date.Equal(day.AddDate(0, 0, -2)))
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.CountByFinch(ctx, finch.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("count on date ignores time of day", func(t *testing.T) {
		count, err := repo.CountByFinchOnDate(ctx, finch.ID, day.Add(23*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountByFinchOnDate(ctx, finch.ID, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestPhotoRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewPhotoRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	other := testutil.CreateTestFinch(t, db, "Mango")

	require.NoError(t, repo.Create(ctx, &domain.Photo{URL: "/static/finch-photos/a1b2c3.jpg", StorageKey: "a1b2c3.jpg", FinchID: finch.ID}))
	testutil.CreateTestPhoto(t, db, other.ID, "ffffff.png")

	photos, err := repo.ListByFinch(ctx, finch.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "a1b2c3.jpg", photos[0].StorageKey)

	count, err := repo.CountByFinch(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBuildOrderClause(t *testing.T) {
	fields := map[string]string{"name": "name", "createdAt": "created_at"}

	assert.Equal(t, "created_at DESC", repository.BuildOrderClause(
		repository.SortConfig{Field: "createdAt", Order: repository.SortOrderDesc}, fields, "name"))
	assert.Equal(t, "name ASC", repository.BuildOrderClause(
		repository.SortConfig{Field: "password", Order: repository.ParseSortOrder("bogus")}, fields, "name"))
	assert.Equal(t, repository.SortOrderDesc, repository.ParseSortOrder("DESC"))
}
