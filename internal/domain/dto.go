package domain

import (
	"github.com/google/uuid"
)

// DateLayout is the wire format of feeding dates
const DateLayout = "2006-01-02"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Finch DTOs

type FinchDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Habitat   string    `json:"habitat"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// FinchDetailDTO is the detail view of a finch with everything it owns,
// plus the toys it can still be given.
type FinchDetailDTO struct {
	FinchDTO
	FedForToday   bool         `json:"fedForToday"`
	Feedings      []FeedingDTO `json:"feedings"`
	Toys          []ToyDTO     `json:"toys"`
	AvailableToys []ToyDTO     `json:"availableToys"`
	Photos        []PhotoDTO   `json:"photos"`
	Meals         []MealDTO    `json:"meals"`
}

type CreateFinchRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Color   string `json:"color" validate:"required,max=100"`
	Size    string `json:"size" validate:"required,max=100"`
	Habitat string `json:"habitat" validate:"required,max=250"`
}

// UpdateFinchRequest has no name field: a finch cannot be renamed.
type UpdateFinchRequest struct {
	Color   string `json:"color" validate:"required,max=100"`
	Size    string `json:"size" validate:"required,max=100"`
	Habitat string `json:"habitat" validate:"required,max=250"`
}

// Toy DTOs

type ToyDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type CreateToyRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"required,max=20"`
}

type UpdateToyRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"required,max=20"`
}

// Feeding DTOs

type FeedingDTO struct {
	ID        uuid.UUID `json:"id"`
	FinchID   uuid.UUID `json:"finchId"`
	Date      string    `json:"date"`
	Meal      Meal      `json:"meal"`
	MealLabel string    `json:"mealLabel"`
}

type AddFeedingRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Meal string `json:"meal" validate:"required,oneof=B L D"`
}

type MealDTO struct {
	Value Meal   `json:"value"`
	Label string `json:"label"`
}

// Photo DTOs

type PhotoDTO struct {
	ID        uuid.UUID `json:"id"`
	FinchID   uuid.UUID `json:"finchId"`
	URL       string    `json:"url"`
	CreatedAt string    `json:"createdAt"`
}

// Page views

type HomeDTO struct {
	Name  string            `json:"name"`
	Links map[string]string `json:"links"`
}

type AboutDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}
