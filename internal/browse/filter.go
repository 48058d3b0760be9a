// Package browse holds the pure filter and sort stages and the pipeline
// composing them. Nothing here keeps state or mutates its input.
package browse

import "github.com/hammamikhairi/recipedeck/internal/domain"

// QuickThreshold is the exclusive upper bound, in minutes, for the quick filter.
const QuickThreshold = 30

// ApplyFilter returns the recipes selected by f, in input order.
// Unknown tags, FilterAll included, return recipes itself.
func ApplyFilter(recipes []domain.Recipe, f domain.Filter) []domain.Recipe {
	switch f {
	case domain.FilterEasy, domain.FilterMedium, domain.FilterHard:
		return byDifficulty(recipes, domain.Difficulty(f))
	case domain.FilterQuick:
		return shorterThan(recipes, QuickThreshold)
	default:
		return recipes
	}
}

func byDifficulty(recipes []domain.Recipe, level domain.Difficulty) []domain.Recipe {
	return keep(recipes, func(r domain.Recipe) bool { return r.Difficulty == level })
}

func shorterThan(recipes []domain.Recipe, minutes int) []domain.Recipe {
	return keep(recipes, func(r domain.Recipe) bool { return r.Minutes < minutes })
}

func keep(recipes []domain.Recipe, pred func(domain.Recipe) bool) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
