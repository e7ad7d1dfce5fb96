package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/repository"
	"github.com/straye-as/finch-collector/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinchRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	finch := &domain.Finch{Name: "Pip", Color: "Zebra", Size: "Small", Habitat: "Aviary"}
	require.NoError(t, repo.Create(ctx, finch))
	assert.NotEqual(t, uuid.Nil, finch.ID)

	got, err := repo.GetByID(ctx, finch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pip", got.Name)
	assert.Equal(t, "Aviary", got.Habitat)
}

func TestFinchRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestFinchRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	testutil.CreateTestFinch(t, db, "Zazu")
	testutil.CreateTestFinch(t, db, "Apollo")
	testutil.CreateTestFinch(t, db, "Mango")

	t.Run("default order is name ascending", func(t *testing.T) {
		finches, err := repo.List(ctx, repository.ListFilter{Sort: repository.DefaultSortConfig()})
		require.NoError(t, err)
		require.Len(t, finches, 3)
		assert.Equal(t, "Apollo", finches[0].Name)
		assert.Equal(t, "Zazu", finches[2].Name)
	})

	t.Run("descending", func(t *testing.T) {
		finches, err := repo.List(ctx, repository.ListFilter{
			Sort: repository.SortConfig{Field: "name", Order: repository.SortOrderDesc},
		})
		require.NoError(t, err)
		require.Len(t, finches, 3)
		assert.Equal(t, "Zazu", finches[0].Name)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		finches, err := repo.List(ctx, repository.ListFilter{Search: "MAN"})
		require.NoError(t, err)
		require.Len(t, finches, 1)
		assert.Equal(t, "Mango", finches[0].Name)
	})
}

func TestFinchRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	finch.Color = "Gouldian"
	require.NoError(t, repo.Update(ctx, finch))

	got, err := repo.GetByID(ctx, finch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gouldian", got.Color)
	assert.Equal(t, "Pip", got.Name)
}

func TestFinchRepository_GetWithDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	ball := testutil.CreateTestToy(t, db, "Ball", "Red")
	bell := testutil.CreateTestToy(t, db, "Bell", "Gold")
	testutil.AssociateTestToy(t, db, finch.ID, bell.ID)
	testutil.AssociateTestToy(t, db, finch.ID, ball.ID)

	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestFeeding(t, db, finch.ID, older, domain.MealBreakfast)
	testutil.CreateTestFeeding(t, db, finch.ID, newer, domain.MealDinner)
	testutil.CreateTestPhoto(t, db, finch.ID, "abc123.jpg")

	got, err := repo.GetWithDetails(ctx, finch.ID)
	require.NoError(t, err)

	require.Len(t, got.Toys, 2)
	assert.Equal(t, "Ball", got.Toys[0].Name)
	assert.Equal(t, "Bell", got.Toys[1].Name)

	require.Len(t, got.Feedings, 2)
	assert.Equal(t, domain.MealDinner, got.Feedings[0].Meal)
	assert.True(t, got.Feedings[0].Date.Equal(newer))

	require.Len(t, got.Photos, 1)
	assert.Equal(t, "abc123.jpg", got.Photos[0].StorageKey)
}

func TestFinchRepository_AddToy_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	toy := testutil.CreateTestToy(t, db, "Ball", "Red")

	require.NoError(t, repo.AddToy(ctx, finch.ID, toy.ID))
	require.NoError(t, repo.AddToy(ctx, finch.ID, toy.ID))

	var count int64
	require.NoError(t, db.Model(&domain.FinchToy{}).Where("finch_id = ?", finch.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	has, err := repo.HasToy(ctx, finch.ID, toy.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestFinchRepository_RemoveToy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	toy := testutil.CreateTestToy(t, db, "Ball", "Red")

	t.Run("absent toy is a no-op", func(t *testing.T) {
		require.NoError(t, repo.RemoveToy(ctx, finch.ID, toy.ID))
	})

	t.Run("present toy is removed and the toy survives", func(t *testing.T) {
		testutil.AssociateTestToy(t, db, finch.ID, toy.ID)
		require.NoError(t, repo.RemoveToy(ctx, finch.ID, toy.ID))

		has, err := repo.HasToy(ctx, finch.ID, toy.ID)
		require.NoError(t, err)
		assert.False(t, has)

		_, err = repository.NewToyRepository(db).GetByID(ctx, toy.ID)
		assert.NoError(t, err)
	})
}

func TestFinchRepository_Delete_Cascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	finch := testutil.CreateTestFinch(t, db, "Pip")
	other := testutil.CreateTestFinch(t, db, "Mango")
	toy := testutil.CreateTestToy(t, db, "Ball", "Red")
	testutil.AssociateTestToy(t, db, finch.ID, toy.ID)
	testutil.AssociateTestToy(t, db, other.ID, toy.ID)
	testutil.CreateTestFeeding(t, db, finch.ID, time.Now(), domain.MealLunch)
	testutil.CreateTestPhoto(t, db, finch.ID, "abc123.png")

	require.NoError(t, repo.Delete(ctx, finch.ID))

	_, err := repo.GetByID(ctx, finch.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	var feedings, photos, links int64
	require.NoError(t, db.Model(&domain.Feeding{}).Where("finch_id = ?", finch.ID).Count(&feedings).Error)
	require.NoError(t, db.Model(&domain.Photo{}).Where("finch_id = ?", finch.ID).Count(&photos).Error)
	require.NoError(t, db.Model(&domain.FinchToy{}).Count(&links).Error)
	assert.Zero(t, feedings)
	assert.Zero(t, photos)
	assert.Equal(t, int64(1), links, "the other finch keeps its toy")

	_, err = repository.NewToyRepository(db).GetByID(ctx, toy.ID)
	assert.NoError(t, err)
}

func TestFinchRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestFinchRepository_ListUnderfedOn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFinchRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	full := testutil.CreateTestFinch(t, db, "Full")
	for _, meal := range domain.Meals {
		testutil.CreateTestFeeding(t, db, full.ID, day, meal)
	}

	partial := testutil.CreateTestFinch(t, db, "Partial")
	testutil.CreateTestFeeding(t, db, partial.ID, day, domain.MealBreakfast)
	testutil.CreateTestFeeding(t, db, partial.ID, day.AddDate(0, 0, -1), domain.MealLunch)
	testutil.CreateTestFeeding(t, db, partial.ID, day.AddDate(0, 0, -1), domain.MealDinner)

	hungry := testutil.CreateTestFinch(t, db, "Hungry")

	finches, err := repo.ListUnderfedOn(ctx, day.Add(15*time.Hour), len(domain.Meals))
	require.NoError(t, err)

	names := make([]string, 0, len(finches))
	for _, f := range finches {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{hungry.Name, partial.Name}, names)
}
