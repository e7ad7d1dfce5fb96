package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/mapper"
	"github.com/stretchr/testify/assert"
)

func TestToFinchDTO(t *testing.T) {
	now := time.Now()
	finch := &domain.Finch{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    "Zebra Finch",
		Color:   "Orange-cheeked",
		Size:    "Small",
		Habitat: "Grasslands",
	}

	dto := mapper.ToFinchDTO(finch)

	assert.Equal(t, finch.ID, dto.ID)
	assert.Equal(t, finch.Name, dto.Name)
	assert.Equal(t, finch.Color, dto.Color)
	assert.Equal(t, finch.Size, dto.Size)
	assert.Equal(t, finch.Habitat, dto.Habitat)
	assert.NotEmpty(t, dto.CreatedAt)
	assert.NotEmpty(t, dto.UpdatedAt)
}

func TestToFinchDetailDTO(t *testing.T) {
	finchID := uuid.New()
	owned := domain.Toy{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Bell", Color: "Gold"}
	available := domain.Toy{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Mirror", Color: "Silver"}

	finch := &domain.Finch{
		BaseModel: domain.BaseModel{ID: finchID},
		Name:      "Gouldian Finch",
		Feedings: []domain.Feeding{
			{
				BaseModel: domain.BaseModel{ID: uuid.New()},
				Date:      time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
				Meal:      domain.MealLunch,
				FinchID:   finchID,
			},
		},
		Toys: []domain.Toy{owned},
		Photos: []domain.Photo{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, URL: "https://cdn/bucket/abc123.jpg", FinchID: finchID},
		},
	}

	dto := mapper.ToFinchDetailDTO(finch, []domain.Toy{available}, true)

	assert.Equal(t, finchID, dto.ID)
	assert.True(t, dto.FedForToday)
	assert.Len(t, dto.Feedings, 1)
	assert.Equal(t, "2024-03-09", dto.Feedings[0].Date)
	assert.Equal(t, "Lunch", dto.Feedings[0].MealLabel)
	assert.Len(t, dto.Toys, 1)
	assert.Equal(t, owned.ID, dto.Toys[0].ID)
	assert.Len(t, dto.AvailableToys, 1)
	assert.Equal(t, available.ID, dto.AvailableToys[0].ID)
	assert.Len(t, dto.Photos, 1)
	assert.Equal(t, "https://cdn/bucket/abc123.jpg", dto.Photos[0].URL)
	assert.Len(t, dto.Meals, len(domain.Meals))
}

func TestToFinchDetailDTO_EmptyCollectionsAreNotNil(t *testing.T) {
	finch := &domain.Finch{BaseModel: domain.BaseModel{ID: uuid.New()}}

	dto := mapper.ToFinchDetailDTO(finch, nil, false)

	assert.NotNil(t, dto.Feedings)
	assert.NotNil(t, dto.Toys)
	assert.NotNil(t, dto.AvailableToys)
	assert.NotNil(t, dto.Photos)
	assert.False(t, dto.FedForToday)
}
