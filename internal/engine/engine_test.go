package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipedeck/internal/browse"
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/logger"
	"github.com/hammamikhairi/recipedeck/internal/recipe"
)

// recordingRenderer keeps every listing it was asked to draw.
type recordingRenderer struct {
	calls [][]domain.Recipe
	sels  []domain.Selection
	err   error
}

func (r *recordingRenderer) Render(_ context.Context, visible []domain.Recipe, sel domain.Selection) error {
	r.calls = append(r.calls, visible)
	r.sels = append(r.sels, sel)
	return r.err
}

// failingSource errors on every List call.
type failingSource struct{ domain.RecipeSource }

func (failingSource) List(context.Context) ([]domain.Recipe, error) {
	return nil, errors.New("disk on fire")
}

func setupEngine(t *testing.T, opts ...Option) (*Engine, *recordingRenderer, *bytes.Buffer, context.Context) {
	t.Helper()
	var logs bytes.Buffer
	log := logger.New(logger.LevelNormal, &logs)
	renderer := &recordingRenderer{}
	eng := New(recipe.NewMemorySource(log), renderer, log, opts...)
	return eng, renderer, &logs, context.Background()
}

func titles(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func TestReduce(t *testing.T) {
	start := domain.Selection{Filter: domain.FilterEasy, Sort: domain.SortTime}

	tests := []struct {
		name    string
		ev      domain.Event
		want    domain.Selection
		changed bool
	}{
		{"filter keeps sort", domain.FilterSelected(domain.FilterHard), domain.Selection{Filter: domain.FilterHard, Sort: domain.SortTime}, true},
		{"sort keeps filter", domain.SortSelected(domain.SortName), domain.Selection{Filter: domain.FilterEasy, Sort: domain.SortName}, true},
		{"unknown tag stored", domain.FilterSelected("spicy"), domain.Selection{Filter: "spicy", Sort: domain.SortTime}, true},
		{"show ignored", domain.Event{Kind: domain.EventShowRecipe, Payload: "3"}, start, false},
		{"help ignored", domain.Event{Kind: domain.EventHelp}, start, false},
		{"unknown ignored", domain.Event{Kind: domain.EventUnknown, Payload: "easy"}, start, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Reduce(start, tt.ev)
			if changed != tt.changed {
				t.Fatalf("changed=%v, want %v", changed, tt.changed)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRefreshDefaults(t *testing.T) {
	eng, renderer, logs, ctx := setupEngine(t)

	visible, err := eng.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	want := []string{
		"Classic Pasta", "Chicken Curry", "Grilled Cheese", "Beef Steak",
		"Veg Salad", "Fried Rice", "Chocolate Cake", "Omelette",
	}
	if diff := cmp.Diff(want, titles(visible)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(renderer.calls) != 1 {
		t.Fatalf("expected 1 render, got %d", len(renderer.calls))
	}
	if !strings.Contains(logs.String(), "displaying 8 recipes (filter: all, sort: none)") {
		t.Fatalf("missing observability line, logs=%q", logs.String())
	}
}

func TestSelectionsPersistIndependently(t *testing.T) {
	eng, renderer, logs, ctx := setupEngine(t)

	if _, err := eng.SetSort(ctx, domain.SortName); err != nil {
		t.Fatalf("set sort: %v", err)
	}
	visible, err := eng.SetFilter(ctx, domain.FilterEasy)
	if err != nil {
		t.Fatalf("set filter: %v", err)
	}

	want := domain.Selection{Filter: domain.FilterEasy, Sort: domain.SortName}
	if eng.Selection() != want {
		t.Fatalf("selection=%+v, want %+v", eng.Selection(), want)
	}
	if diff := cmp.Diff([]string{"Classic Pasta", "Grilled Cheese", "Omelette", "Veg Salad"}, titles(visible)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := renderer.sels[len(renderer.sels)-1]; got != want {
		t.Fatalf("renderer saw %+v, want %+v", got, want)
	}
	if !strings.Contains(logs.String(), "displaying 4 recipes (filter: easy, sort: name)") {
		t.Fatalf("missing observability line, logs=%q", logs.String())
	}
}

func TestPipelineStartsFromFullStore(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)

	// Narrow to hard, then widen to quick: the quick list must come from
	// the whole store, not from the two hard recipes.
	if _, err := eng.SetFilter(ctx, domain.FilterHard); err != nil {
		t.Fatalf("set filter: %v", err)
	}
	if _, err := eng.SetSort(ctx, domain.SortTime); err != nil {
		t.Fatalf("set sort: %v", err)
	}
	visible, err := eng.SetFilter(ctx, domain.FilterQuick)
	if err != nil {
		t.Fatalf("set filter: %v", err)
	}

	want := []string{"Omelette", "Grilled Cheese", "Veg Salad", "Classic Pasta"}
	if diff := cmp.Diff(want, titles(visible)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDispatchUnhandledEvent(t *testing.T) {
	eng, renderer, _, ctx := setupEngine(t, WithSelection(domain.Selection{Filter: domain.FilterMedium, Sort: domain.SortTime}))

	_, err := eng.Dispatch(ctx, domain.Event{Kind: domain.EventQuit})
	if !errors.Is(err, domain.ErrUnhandledEvent) {
		t.Fatalf("expected ErrUnhandledEvent, got %v", err)
	}
	if len(renderer.calls) != 0 {
		t.Fatalf("unhandled event triggered %d renders", len(renderer.calls))
	}
	if got := eng.Selection(); got.Filter != domain.FilterMedium || got.Sort != domain.SortTime {
		t.Fatalf("selection changed to %+v", got)
	}
}

func TestRefreshErrors(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()

	t.Run("source", func(t *testing.T) {
		eng := New(failingSource{}, nil, log)
		if _, err := eng.Refresh(ctx); err == nil || !strings.Contains(err.Error(), "listing recipes") {
			t.Fatalf("expected wrapped list error, got %v", err)
		}
	})

	t.Run("renderer", func(t *testing.T) {
		renderErr := errors.New("screen gone")
		eng := New(recipe.NewMemorySource(log), &recordingRenderer{err: renderErr}, log)
		if _, err := eng.Refresh(ctx); !errors.Is(err, renderErr) {
			t.Fatalf("expected render error, got %v", err)
		}
	})
}

func TestWithSorter(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := recipe.NewMemorySourceFrom(log, []domain.Recipe{
		{ID: 1, Title: "Ölbröd", Minutes: 40, Difficulty: domain.DifficultyMedium},
		{ID: 2, Title: "Zucchini", Minutes: 20, Difficulty: domain.DifficultyEasy},
	})
	eng := New(src, nil, log, WithSorter(browse.NewSorter(language.Swedish)))

	visible, err := eng.SetSort(context.Background(), domain.SortName)
	if err != nil {
		t.Fatalf("set sort: %v", err)
	}
	if diff := cmp.Diff([]string{"Zucchini", "Ölbröd"}, titles(visible)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	eng, _, _, ctx := setupEngine(t)

	tests := []struct {
		ref       string
		wantTitle string
		wantErr   error
	}{
		{"3", "Grilled Cheese", nil},
		{" 8 ", "Omelette", nil},
		{"curry", "Chicken Curry", nil},
		{"rice", "Fried Rice", nil},
		{"42", "", domain.ErrNotFound},
		{"lasagne", "", domain.ErrNotFound},
		{"", "", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			r, err := eng.Lookup(ctx, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Title != tt.wantTitle {
				t.Fatalf("got %q, want %q", r.Title, tt.wantTitle)
			}
		})
	}
}
