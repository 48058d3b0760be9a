package domain

// Filter is a selector tag naming which recipes to keep.
// Tags outside the known set are allowed and mean "no filtering".
type Filter string

const (
	FilterAll    Filter = "all"
	FilterEasy   Filter = "easy"
	FilterMedium Filter = "medium"
	FilterHard   Filter = "hard"
	FilterQuick  Filter = "quick"
)

// Sort is a selector tag naming the ordering of the visible recipes.
// Tags outside the known set are allowed and mean "keep store order".
type Sort string

const (
	SortNone Sort = "none"
	SortName Sort = "name"
	SortTime Sort = "time"
)

// Filters lists the known filter tags in button order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterEasy, FilterMedium, FilterHard, FilterQuick}
}

// Sorts lists the known sort tags in button order.
func Sorts() []Sort {
	return []Sort{SortNone, SortName, SortTime}
}

// Known reports whether f is one of the listed filter tags.
func (f Filter) Known() bool {
	for _, k := range Filters() {
		if f == k {
			return true
		}
	}
	return false
}

// Known reports whether s is one of the listed sort tags.
func (s Sort) Known() bool {
	for _, k := range Sorts() {
		if s == k {
			return true
		}
	}
	return false
}

// Selection is the pair of currently active selectors. It is a plain value:
// transitions return a new Selection instead of mutating shared state.
type Selection struct {
	Filter Filter
	Sort   Sort
}

// DefaultSelection returns the state the browser starts in.
func DefaultSelection() Selection {
	return Selection{Filter: FilterAll, Sort: SortNone}
}

// WithFilter returns a copy of s with the filter replaced.
func (s Selection) WithFilter(f Filter) Selection {
	s.Filter = f
	return s
}

// WithSort returns a copy of s with the sort replaced.
func (s Selection) WithSort(o Sort) Selection {
	s.Sort = o
	return s
}
