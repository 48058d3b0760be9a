// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

import "fmt"

// Difficulty is how demanding a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// String returns the difficulty tag.
func (d Difficulty) String() string { return string(d) }

// Recipe is a single entry of the recipe store. Values are never modified
// after the store is built; pass them around by value.
type Recipe struct {
	ID          int
	Title       string
	Minutes     int // preparation time
	Difficulty  Difficulty
	Description string
}

// String returns a short label, e.g. "Omelette(8)".
func (r Recipe) String() string {
	return fmt.Sprintf("%s(%d)", r.Title, r.Minutes)
}
