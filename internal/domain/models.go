package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a new identity when the caller did not set one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Finch represents an individual bird in the collection
type Finch struct {
	BaseModel
	Name     string    `gorm:"type:varchar(100);not null"`
	Color    string    `gorm:"type:varchar(100);not null"`
	Size     string    `gorm:"type:varchar(100);not null"`
	Habitat  string    `gorm:"type:varchar(250);not null"`
	Feedings []Feeding `gorm:"foreignKey:FinchID;constraint:OnDelete:CASCADE"`
	Photos   []Photo   `gorm:"foreignKey:FinchID;constraint:OnDelete:CASCADE"`
	Toys     []Toy     `gorm:"many2many:finch_toys;constraint:OnDelete:CASCADE"`
}

// Toy is an item that can belong to any number of finches
type Toy struct {
	BaseModel
	Name  string `gorm:"type:varchar(50);not null"`
	Color string `gorm:"type:varchar(20);not null"`
}

// FinchToy is the join row of the finch/toy relation. The composite
// primary key keeps the relation free of duplicate pairs.
type FinchToy struct {
	FinchID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ToyID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (FinchToy) TableName() string {
	return "finch_toys"
}

// Meal identifies which meal a feeding was
type Meal string

const (
	MealBreakfast Meal = "B"
	MealLunch     Meal = "L"
	MealDinner    Meal = "D"
)

// Meals lists every meal kind in serving order
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner}

// Label returns the display name of the meal
func (m Meal) Label() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	default:
		return string(m)
	}
}

// IsValid reports whether m is one of the known meal kinds
func (m Meal) IsValid() bool {
	for _, known := range Meals {
		if m == known {
			return true
		}
	}
	return false
}

// Feeding is a dated meal event belonging to one finch
type Feeding struct {
	BaseModel
	Date    time.Time `gorm:"type:date;not null;index"`
	Meal    Meal      `gorm:"type:varchar(1);not null;default:'B'"`
	FinchID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// Photo references an uploaded image of a finch
type Photo struct {
	BaseModel
	URL        string    `gorm:"type:varchar(500);not null"`
	StorageKey string    `gorm:"type:varchar(200);not null"`
	FinchID    uuid.UUID `gorm:"type:uuid;not null;index"`
}
