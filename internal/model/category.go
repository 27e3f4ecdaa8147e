package model

import "time"

// CategoryType indicates whether a category is for income, expense, or system use.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeSystem represents system-managed categories (e.g., transfers).
	CategoryTypeSystem CategoryType = "system"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeSystem:
		return true
	default:
		return false
	}
}

// Category represents a spending or income category.
type Category struct {
	CreatedAt   time.Time
	ID          string
	Name        string
	Description string
	Type        CategoryType
	Color       uint32 // packed RGBA, see package palette
	IsActive    bool
}
