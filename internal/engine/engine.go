// Package engine owns the selection state and re-runs the browse pipeline
// whenever it changes.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipedeck/internal/browse"
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithSelection sets the selection the engine starts from.
func WithSelection(sel domain.Selection) Option {
	return func(e *Engine) {
		e.sel = sel
	}
}

// WithSorter replaces the default English-collating sorter.
func WithSorter(s *browse.Sorter) Option {
	return func(e *Engine) {
		e.sorter = s
	}
}

// Engine holds the current selection and drives filter, sort and render.
// It is meant to be driven from a single goroutine (the UI event loop or a
// one-shot command) and does no locking.
type Engine struct {
	recipes  domain.RecipeSource
	renderer domain.Renderer
	log      *logger.Logger
	sorter   *browse.Sorter
	sel      domain.Selection
}

// New creates an engine with the given dependencies and options.
// renderer may be nil when only the computed listing is needed.
func New(recipes domain.RecipeSource, renderer domain.Renderer, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes:  recipes,
		renderer: renderer,
		log:      log,
		sorter:   browse.DefaultSorter(),
		sel:      domain.DefaultSelection(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Selection returns the current selection.
func (e *Engine) Selection() domain.Selection {
	return e.sel
}

// SetFilter replaces the active filter and refreshes the listing.
func (e *Engine) SetFilter(ctx context.Context, f domain.Filter) ([]domain.Recipe, error) {
	return e.Dispatch(ctx, domain.FilterSelected(f))
}

// SetSort replaces the active sort and refreshes the listing.
func (e *Engine) SetSort(ctx context.Context, s domain.Sort) ([]domain.Recipe, error) {
	return e.Dispatch(ctx, domain.SortSelected(s))
}

// Dispatch applies a selection event and refreshes the listing. Events that
// don't change the selection return ErrUnhandledEvent and leave the state
// as it was.
func (e *Engine) Dispatch(ctx context.Context, ev domain.Event) ([]domain.Recipe, error) {
	next, ok := Reduce(e.sel, ev)
	if !ok {
		return nil, fmt.Errorf("%s: %w", ev.Kind, domain.ErrUnhandledEvent)
	}

	e.log.Debug("selection %s/%s -> %s/%s", e.sel.Filter, e.sel.Sort, next.Filter, next.Sort)
	e.sel = next
	return e.Refresh(ctx)
}

// Refresh recomputes the visible recipes from the full store, renders them
// and logs what is shown.
func (e *Engine) Refresh(ctx context.Context) ([]domain.Recipe, error) {
	store, err := e.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	visible := e.sorter.Visible(store, e.sel)

	if e.renderer != nil {
		if err := e.renderer.Render(ctx, visible, e.sel); err != nil {
			return nil, fmt.Errorf("rendering: %w", err)
		}
	}

	e.log.Info("displaying %d recipes (filter: %s, sort: %s)", len(visible), e.sel.Filter, e.sel.Sort)
	return visible, nil
}

// Lookup finds a single recipe by ID or, failing that, by the first title
// or description match in store order.
func (e *Engine) Lookup(ctx context.Context, ref string) (domain.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Recipe{}, domain.ErrNotFound
	}

	if id, err := strconv.Atoi(ref); err == nil {
		r, err := e.recipes.Get(ctx, id)
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("recipe %d: %w", id, err)
		}
		return r, nil
	}

	matches, err := e.recipes.Search(ctx, ref)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("searching %q: %w", ref, err)
	}
	if len(matches) == 0 {
		return domain.Recipe{}, fmt.Errorf("recipe %q: %w", ref, domain.ErrNotFound)
	}
	return matches[0], nil
}
