package domain_test

import (
	"testing"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMeal_Label(t *testing.T) {
	tests := []struct {
		name     string
		meal     domain.Meal
		expected string
	}{
		{name: "breakfast", meal: domain.MealBreakfast, expected: "Breakfast"},
		{name: "lunch", meal: domain.MealLunch, expected: "Lunch"},
		{name: "dinner", meal: domain.MealDinner, expected: "Dinner"},
		{name: "unknown falls back to raw value", meal: domain.Meal("X"), expected: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.meal.Label())
		})
	}
}

func TestMeal_IsValid(t *testing.T) {
	for _, m := range domain.Meals {
		assert.True(t, m.IsValid(), "meal %q should be valid", m)
	}
	assert.False(t, domain.Meal("").IsValid())
	assert.False(t, domain.Meal("b").IsValid())
	assert.False(t, domain.Meal("Brunch").IsValid())
}

func TestFinchToy_TableName(t *testing.T) {
	assert.Equal(t, "finch_toys", domain.FinchToy{}.TableName())
}

func TestAPIError_Error(t *testing.T) {
	withDetail := &domain.APIError{Title: "Not Found", Detail: "Finch not found"}
	assert.Equal(t, "Finch not found", withDetail.Error())

	titleOnly := &domain.APIError{Title: "Not Found"}
	assert.Equal(t, "Not Found", titleOnly.Error())
}

func TestGetValidationMessage(t *testing.T) {
	assert.Equal(t, "This field is required", domain.GetValidationMessage("required"))
	assert.Equal(t, "Validation failed: custom", domain.GetValidationMessage("custom"))
}
