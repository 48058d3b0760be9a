package domain

// EventKind classifies a user action.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventFilterSelected
	EventSortSelected
	EventShowRecipe // payload is the recipe ID
	EventHelp
	EventQuit
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventFilterSelected:
		return "filter_selected"
	case EventSortSelected:
		return "sort_selected"
	case EventShowRecipe:
		return "show_recipe"
	case EventHelp:
		return "help"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a parsed user action.
type Event struct {
	Kind    EventKind
	Payload string // selector tag or recipe ID, depending on Kind
}

// FilterSelected builds the event raised by a filter button.
func FilterSelected(f Filter) Event {
	return Event{Kind: EventFilterSelected, Payload: string(f)}
}

// SortSelected builds the event raised by a sort button.
func SortSelected(s Sort) Event {
	return Event{Kind: EventSortSelected, Payload: string(s)}
}

var eventNames = map[string]EventKind{
	"filter_selected": EventFilterSelected,
	"sort_selected":   EventSortSelected,
	"show_recipe":     EventShowRecipe,
	"help":            EventHelp,
	"quit":            EventQuit,
	"unknown":         EventUnknown,
}

// EventFromString converts a snake_case event name to an EventKind.
// Returns EventUnknown for unrecognized names.
func EventFromString(name string) EventKind {
	if k, ok := eventNames[name]; ok {
		return k
	}
	return EventUnknown
}
