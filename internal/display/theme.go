// Package display renders recipe listings for the terminal.
//
// [Theme] turns recipes and selections into styled text. [WriterRenderer]
// prints listings to any io.Writer, and [UI] runs the interactive Bubble Tea
// screen.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipedeck/internal/domain"
)

// Theme holds the styles used to draw cards and the selector bar.
type Theme struct {
	title        lipgloss.Style
	meta         lipgloss.Style
	description  lipgloss.Style
	badge        map[domain.Difficulty]lipgloss.Style
	label        lipgloss.Style
	button       lipgloss.Style
	buttonActive lipgloss.Style
	hint         lipgloss.Style
	urgent       lipgloss.Style
	banner       lipgloss.Style
}

// NewTheme builds the coloured theme for output going through r.
func NewTheme(r *lipgloss.Renderer) *Theme {
	return &Theme{
		title:       r.NewStyle().Foreground(lipgloss.Color("#bbf7d0")).Bold(true),
		meta:        r.NewStyle().Foreground(lipgloss.Color("#a1a1aa")),
		description: r.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		badge: map[domain.Difficulty]lipgloss.Style{
			domain.DifficultyEasy:   r.NewStyle().Foreground(lipgloss.Color("#86efac")),
			domain.DifficultyMedium: r.NewStyle().Foreground(lipgloss.Color("#fde68a")),
			domain.DifficultyHard:   r.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
		},
		label:        r.NewStyle().Foreground(lipgloss.Color("#71717a")),
		button:       r.NewStyle().Foreground(lipgloss.Color("#a1a1aa")),
		buttonActive: r.NewStyle().Foreground(lipgloss.Color("#bae6fd")).Bold(true),
		hint:         r.NewStyle().Foreground(lipgloss.Color("#71717a")),
		urgent:       r.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
		banner:       r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
	}
}

// PlainTheme renders without any escape sequences. Output is stable across
// terminals, which makes it suitable for pipes and golden files.
func PlainTheme() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		title:       plain,
		meta:        plain,
		description: plain,
		badge: map[domain.Difficulty]lipgloss.Style{
			domain.DifficultyEasy:   plain,
			domain.DifficultyMedium: plain,
			domain.DifficultyHard:   plain,
		},
		label:        plain,
		button:       plain,
		buttonActive: plain,
		hint:         plain,
		urgent:       plain,
		banner:       plain,
	}
}

// Card renders one recipe as three lines: title, time and difficulty,
// description.
func (t *Theme) Card(r domain.Recipe) string {
	badge, ok := t.badge[r.Difficulty]
	if !ok {
		badge = t.meta
	}

	var b strings.Builder
	b.WriteString("  " + t.title.Render(r.Title) + t.meta.Render(fmt.Sprintf(" #%d", r.ID)))
	b.WriteByte('\n')
	b.WriteString("  " + t.meta.Render(fmt.Sprintf("⏱ %d min", r.Minutes)) + t.meta.Render(" · ") + badge.Render(r.Difficulty.String()))
	b.WriteByte('\n')
	b.WriteString("  " + t.description.Render(r.Description))
	return b.String()
}

// Listing renders cards separated by blank lines.
func (t *Theme) Listing(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return "  " + t.hint.Render("No recipes match.")
	}
	cards := make([]string, len(recipes))
	for i, r := range recipes {
		cards[i] = t.Card(r)
	}
	return strings.Join(cards, "\n\n")
}

// SelectorBar renders the filter and sort buttons with the active ones
// bracketed and highlighted. An active tag outside the known set is
// appended so the user can still see it.
func (t *Theme) SelectorBar(sel domain.Selection) string {
	filters := make([]string, 0, len(domain.Filters())+1)
	for _, f := range domain.Filters() {
		filters = append(filters, t.selector(string(f), f == sel.Filter))
	}
	if !sel.Filter.Known() {
		filters = append(filters, t.selector(string(sel.Filter), true))
	}

	sorts := make([]string, 0, len(domain.Sorts())+1)
	for _, s := range domain.Sorts() {
		sorts = append(sorts, t.selector(string(s), s == sel.Sort))
	}
	if !sel.Sort.Known() {
		sorts = append(sorts, t.selector(string(sel.Sort), true))
	}

	return "  " + t.label.Render("Filter:") + " " + strings.Join(filters, " ") +
		t.label.Render(" | ") +
		t.label.Render("Sort:") + " " + strings.Join(sorts, " ")
}

func (t *Theme) selector(tag string, active bool) string {
	if active {
		return t.buttonActive.Render("[" + tag + "]")
	}
	return t.button.Render(tag)
}

// Summary renders the one-line count shown under the selector bar.
func (t *Theme) Summary(count int) string {
	noun := "recipes"
	if count == 1 {
		noun = "recipe"
	}
	return "  " + t.hint.Render(fmt.Sprintf("%d %s", count, noun))
}

// Hint renders a dimmed secondary line.
func (t *Theme) Hint(text string) string {
	return "  " + t.hint.Render(text)
}

// Urgent renders an error line.
func (t *Theme) Urgent(text string) string {
	return "  " + t.urgent.Render(text)
}
