package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by identity matches no record
var ErrNotFound = gorm.ErrRecordNotFound

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortConfig holds sorting configuration for list queries
type SortConfig struct {
	Field string    // API field name
	Order SortOrder // asc or desc
}

// DefaultSortConfig sorts by name, A to Z
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Field: "name",
		Order: SortOrderAsc,
	}
}

// ParseSortOrder parses a string into SortOrder, defaulting to asc
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == "desc" {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// ListFilter narrows finch and toy listings
type ListFilter struct {
	Search string
	Sort   SortConfig
}

// sortableFields maps API field names to database column names.
// Only fields in this map can be used for sorting.
var sortableFields = map[string]string{
	"name":      "name",
	"color":     "color",
	"createdAt": "created_at",
}

// BuildOrderClause builds the SQL ORDER BY clause from field mapping and sort config.
// Unknown fields fall back to defaultColumn.
func BuildOrderClause(config SortConfig, fieldMap map[string]string, defaultColumn string) string {
	column, ok := fieldMap[config.Field]
	if !ok {
		column = defaultColumn
	}

	order := "ASC"
	if config.Order == SortOrderDesc {
		order = "DESC"
	}

	return column + " " + order
}

func applyListFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	return query.Order(BuildOrderClause(filter.Sort, sortableFields, "name"))
}

// dayRange returns the half-open interval covering the calendar day of t in UTC
func dayRange(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
