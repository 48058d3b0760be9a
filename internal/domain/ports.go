package domain

import "context"

// RecipeSource provides recipes. List returns the whole store in declared
// order; callers own the returned slice.
type RecipeSource interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id int) (Recipe, error)
	Search(ctx context.Context, query string) ([]Recipe, error)
}

// Renderer displays a listing. Implementations can write to a terminal
// screen, an io.Writer, or discard the output in tests.
type Renderer interface {
	Render(ctx context.Context, visible []Recipe, sel Selection) error
}

// EventParser converts raw user input into events.
type EventParser interface {
	Parse(ctx context.Context, input string) (*Event, error)
}
