package browse

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipedeck/internal/domain"
)

// Sorter orders recipes. Titles are compared with the collation rules of
// its language, so "éclair" sorts next to "eclair" rather than after "z".
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter collating titles for the given language.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{tag: tag}
}

// Language returns the collation language.
func (s *Sorter) Language() language.Tag { return s.tag }

var defaultSorter = NewSorter(language.English)

// DefaultSorter returns the English-collating sorter used by ApplySort.
func DefaultSorter() *Sorter { return defaultSorter }

// ApplySort orders recipes with English collation. See Sorter.Apply.
func ApplySort(recipes []domain.Recipe, o domain.Sort) []domain.Recipe {
	return defaultSorter.Apply(recipes, o)
}

// Apply returns recipes ordered by o. Reordering happens on a copy; for
// SortNone and unknown tags recipes itself is returned. Both orderings are
// stable, so ties keep their input order.
func (s *Sorter) Apply(recipes []domain.Recipe, o domain.Sort) []domain.Recipe {
	switch o {
	case domain.SortName:
		return s.byTitle(recipes)
	case domain.SortTime:
		return byMinutes(recipes)
	default:
		return recipes
	}
}

func (s *Sorter) byTitle(recipes []domain.Recipe) []domain.Recipe {
	// A Collator keeps scratch buffers and is not safe for concurrent use.
	c := collate.New(s.tag)
	out := slices.Clone(recipes)
	slices.SortStableFunc(out, func(a, b domain.Recipe) int {
		return c.CompareString(a.Title, b.Title)
	})
	return out
}

func byMinutes(recipes []domain.Recipe) []domain.Recipe {
	out := slices.Clone(recipes)
	slices.SortStableFunc(out, func(a, b domain.Recipe) int {
		return cmp.Compare(a.Minutes, b.Minutes)
	})
	return out
}
