package browse

import "github.com/hammamikhairi/recipedeck/internal/domain"

// ComputeVisible filters then sorts the full store for sel using English
// collation. The same store and selection always give the same result.
func ComputeVisible(store []domain.Recipe, sel domain.Selection) []domain.Recipe {
	return defaultSorter.Visible(store, sel)
}

// Visible is ComputeVisible with this sorter's collation.
func (s *Sorter) Visible(store []domain.Recipe, sel domain.Selection) []domain.Recipe {
	return s.Apply(ApplyFilter(store, sel.Filter), sel.Sort)
}
