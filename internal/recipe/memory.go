// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"slices"
	"strings"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds the built-in recipes in declared order. The slice is
// written once by the constructor and only read afterwards, so concurrent
// reads need no locking.
type MemorySource struct {
	recipes []domain.Recipe
	byID    map[int]int // recipe ID -> index into recipes
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with the built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{log: log}
	src.seed(builtin())
	return src
}

// NewMemorySourceFrom creates a source over the given recipes. The input is
// copied; later changes to it are not observed.
func NewMemorySourceFrom(log *logger.Logger, recipes []domain.Recipe) *MemorySource {
	src := &MemorySource{log: log}
	src.seed(recipes)
	return src
}

// List returns a copy of every recipe in declared order.
func (s *MemorySource) List(ctx context.Context) ([]domain.Recipe, error) {
	s.log.Debug("listing all recipes, count=%d", len(s.recipes))
	return slices.Clone(s.recipes), nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id int) (domain.Recipe, error) {
	idx, ok := s.byID[id]
	if !ok {
		s.log.Debug("recipe not found: %d", id)
		return domain.Recipe{}, domain.ErrNotFound
	}
	return s.recipes[idx], nil
}

// Search returns recipes whose title or description contain the query,
// ignoring case, in declared order.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.Recipe, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching recipes for: %s", q)

	out := make([]domain.Recipe, 0)
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func matches(r domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Description), query)
}

func (s *MemorySource) seed(recipes []domain.Recipe) {
	s.recipes = slices.Clone(recipes)
	s.byID = make(map[int]int, len(s.recipes))
	for i, r := range s.recipes {
		s.byID[r.ID] = i
	}
	s.log.Debug("seeded %d recipes", len(s.recipes))
}

// builtin returns the fixed recipe set. Order matters: it is the order
// shown when no sort is selected.
func builtin() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Title: "Classic Pasta", Minutes: 25, Difficulty: domain.DifficultyEasy, Description: "Simple and delicious pasta."},
		{ID: 2, Title: "Chicken Curry", Minutes: 45, Difficulty: domain.DifficultyMedium, Description: "Spicy Indian-style curry."},
		{ID: 3, Title: "Grilled Cheese", Minutes: 10, Difficulty: domain.DifficultyEasy, Description: "Cheesy and crispy sandwich."},
		{ID: 4, Title: "Beef Steak", Minutes: 60, Difficulty: domain.DifficultyHard, Description: "Perfectly cooked steak."},
		{ID: 5, Title: "Veg Salad", Minutes: 15, Difficulty: domain.DifficultyEasy, Description: "Fresh and healthy salad."},
		{ID: 6, Title: "Fried Rice", Minutes: 30, Difficulty: domain.DifficultyMedium, Description: "Quick Asian fried rice."},
		{ID: 7, Title: "Chocolate Cake", Minutes: 90, Difficulty: domain.DifficultyHard, Description: "Rich and moist cake."},
		{ID: 8, Title: "Omelette", Minutes: 8, Difficulty: domain.DifficultyEasy, Description: "Fast breakfast omelette."},
	}
}
