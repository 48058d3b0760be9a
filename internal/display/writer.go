package display

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hammamikhairi/recipedeck/internal/domain"
)

// Compile-time interface check.
var _ domain.Renderer = (*WriterRenderer)(nil)

// Format selects how a WriterRenderer prints listings.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []Format{FormatText, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range ValidFormats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: must be one of %v", name, ValidFormats)
}

// WriterRenderer prints each listing it receives to an io.Writer.
type WriterRenderer struct {
	out    io.Writer
	theme  *Theme
	format Format
}

// NewWriterRenderer creates a renderer writing to out. A nil theme means
// PlainTheme.
func NewWriterRenderer(out io.Writer, theme *Theme, format Format) *WriterRenderer {
	if theme == nil {
		theme = PlainTheme()
	}
	return &WriterRenderer{out: out, theme: theme, format: format}
}

// Render writes the selector bar and cards, or a JSON document.
func (w *WriterRenderer) Render(ctx context.Context, visible []domain.Recipe, sel domain.Selection) error {
	if w.format == FormatJSON {
		return w.renderJSON(visible, sel)
	}
	_, err := fmt.Fprintf(w.out, "%s\n%s\n\n%s\n",
		w.theme.SelectorBar(sel), w.theme.Summary(len(visible)), w.theme.Listing(visible))
	return err
}

type listingJSON struct {
	Filter  string      `json:"filter"`
	Sort    string      `json:"sort"`
	Count   int         `json:"count"`
	Recipes []RecipeDoc `json:"recipes"`
}

// RecipeDoc is the JSON shape of a recipe.
type RecipeDoc struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Time        int    `json:"time"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}

// NewRecipeDoc converts a recipe to its JSON shape.
func NewRecipeDoc(r domain.Recipe) RecipeDoc {
	return RecipeDoc{
		ID:          r.ID,
		Title:       r.Title,
		Time:        r.Minutes,
		Difficulty:  r.Difficulty.String(),
		Description: r.Description,
	}
}

func (w *WriterRenderer) renderJSON(visible []domain.Recipe, sel domain.Selection) error {
	doc := listingJSON{
		Filter:  string(sel.Filter),
		Sort:    string(sel.Sort),
		Count:   len(visible),
		Recipes: make([]RecipeDoc, len(visible)),
	}
	for i, r := range visible {
		doc.Recipes[i] = NewRecipeDoc(r)
	}

	return WriteJSON(w.out, doc)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
