package mapper

import (
	"github.com/straye-as/finch-collector/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// ToFinchDTO converts Finch to FinchDTO
func ToFinchDTO(finch *domain.Finch) domain.FinchDTO {
	return domain.FinchDTO{
		ID:        finch.ID,
		Name:      finch.Name,
		Color:     finch.Color,
		Size:      finch.Size,
		Habitat:   finch.Habitat,
		CreatedAt: finch.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt: finch.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// ToFinchDTOs converts a slice of Finch to FinchDTO
func ToFinchDTOs(finches []domain.Finch) []domain.FinchDTO {
	dtos := make([]domain.FinchDTO, len(finches))
	for i := range finches {
		dtos[i] = ToFinchDTO(&finches[i])
	}
	return dtos
}

// ToFinchDetailDTO builds the detail view of a finch. The finch must have
// its Feedings, Toys and Photos loaded.
func ToFinchDetailDTO(finch *domain.Finch, availableToys []domain.Toy, fedForToday bool) domain.FinchDetailDTO {
	return domain.FinchDetailDTO{
		FinchDTO:      ToFinchDTO(finch),
		FedForToday:   fedForToday,
		Feedings:      ToFeedingDTOs(finch.Feedings),
		Toys:          ToToyDTOs(finch.Toys),
		AvailableToys: ToToyDTOs(availableToys),
		Photos:        ToPhotoDTOs(finch.Photos),
		Meals:         ToMealDTOs(domain.Meals),
	}
}

// ToToyDTO converts Toy to ToyDTO
func ToToyDTO(toy *domain.Toy) domain.ToyDTO {
	return domain.ToyDTO{
		ID:        toy.ID,
		Name:      toy.Name,
		Color:     toy.Color,
		CreatedAt: toy.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt: toy.UpdatedAt.UTC().Format(timestampLayout),
	}
}

func ToToyDTOs(toys []domain.Toy) []domain.ToyDTO {
	dtos := make([]domain.ToyDTO, len(toys))
	for i := range toys {
		dtos[i] = ToToyDTO(&toys[i])
	}
	return dtos
}

func ToFeedingDTO(feeding *domain.Feeding) domain.FeedingDTO {
	return domain.FeedingDTO{
		ID:        feeding.ID,
		FinchID:   feeding.FinchID,
		Date:      feeding.Date.UTC().Format(domain.DateLayout),
		Meal:      feeding.Meal,
		MealLabel: feeding.Meal.Label(),
	}
}

func ToFeedingDTOs(feedings []domain.Feeding) []domain.FeedingDTO {
	dtos := make([]domain.FeedingDTO, len(feedings))
	for i := range feedings {
		dtos[i] = ToFeedingDTO(&feedings[i])
	}
	return dtos
}

func ToPhotoDTO(photo *domain.Photo) domain.PhotoDTO {
	return domain.PhotoDTO{
		ID:        photo.ID,
		FinchID:   photo.FinchID,
		URL:       photo.URL,
		CreatedAt: photo.CreatedAt.UTC().Format(timestampLayout),
	}
}

func ToPhotoDTOs(photos []domain.Photo) []domain.PhotoDTO {
	dtos := make([]domain.PhotoDTO, len(photos))
	for i := range photos {
		dtos[i] = ToPhotoDTO(&photos[i])
	}
	return dtos
}

func ToMealDTOs(meals []domain.Meal) []domain.MealDTO {
	dtos := make([]domain.MealDTO, len(meals))
	for i, m := range meals {
		dtos[i] = domain.MealDTO{Value: m, Label: m.Label()}
	}
	return dtos
}
