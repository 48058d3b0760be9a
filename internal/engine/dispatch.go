package engine

import "github.com/hammamikhairi/recipedeck/internal/domain"

// Reduce maps an event to the next selection. Filter events replace only the
// filter and sort events only the sort; the other field always carries over.
// Events that don't touch the selection return sel unchanged and false.
func Reduce(sel domain.Selection, ev domain.Event) (domain.Selection, bool) {
	switch ev.Kind {
	case domain.EventFilterSelected:
		return sel.WithFilter(domain.Filter(ev.Payload)), true
	case domain.EventSortSelected:
		return sel.WithSort(domain.Sort(ev.Payload)), true
	default:
		return sel, false
	}
}
