package display

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/engine"
	"github.com/hammamikhairi/recipedeck/internal/logger"
)

// ── Screen ───────────────────────────────────────────────────────

// Compile-time interface check.
var _ domain.Renderer = (*Screen)(nil)

// Screen is the renderer behind the interactive UI. It keeps the latest
// listing so the Bubble Tea View can draw it.
type Screen struct {
	theme   *Theme
	bar     string
	summary string
	listing string
}

// NewScreen creates an empty screen drawing with theme.
func NewScreen(theme *Theme) *Screen {
	return &Screen{theme: theme}
}

// Render stores the listing for the next frame.
func (s *Screen) Render(ctx context.Context, visible []domain.Recipe, sel domain.Selection) error {
	s.bar = s.theme.SelectorBar(sel)
	s.summary = s.theme.Summary(len(visible))
	s.listing = s.theme.Listing(visible)
	return nil
}

// String returns the current frame body.
func (s *Screen) String() string {
	return s.bar + "\n" + s.summary + "\n\n" + s.listing
}

// ── UI ───────────────────────────────────────────────────────────

const helpText = `Filters: all, easy, medium, hard, quick   (or "filter <tag>", tab cycles)
Sorts:   none, name, time                  (or "sort <tag>", shift+tab cycles)
Recipes: "show <id|name>" or just the id
Quit:    quit, q, ctrl+c`

// UI runs the interactive browser. Every input line is parsed and applied
// inside Bubble Tea's Update, so the engine only ever runs on one goroutine.
type UI struct {
	engine *engine.Engine
	parser domain.EventParser
	screen *Screen
	theme  *Theme
	log    *logger.Logger
}

// NewUI creates the interactive browser. screen must be the renderer the
// engine was built with.
func NewUI(eng *engine.Engine, parser domain.EventParser, screen *Screen, log *logger.Logger) *UI {
	return &UI{
		engine: eng,
		parser: parser,
		screen: screen,
		theme:  screen.theme,
		log:    log,
	}
}

// Run draws the initial listing and starts the Bubble Tea event loop.
// Blocks until the user quits.
func (u *UI) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	m, err := u.newModel(ctx)
	if err != nil {
		return err
	}
	opts = append(opts, tea.WithContext(ctx))
	_, err = tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (u *UI) newModel(ctx context.Context) (model, error) {
	if _, err := u.engine.Refresh(ctx); err != nil {
		return model{}, fmt.Errorf("initial listing: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "recipes> "
	ti.PromptStyle = u.theme.hint
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Placeholder = "easy, quick, sort name, show 3, help"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 60

	return model{ctx: ctx, ui: u, input: ti, status: u.theme.Hint(`Type "help" for commands.`)}, nil
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx    context.Context
	ui     *UI
	input  textinput.Model
	status string
	width  int
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("recipedeck"))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			next := cycle(domain.Filters(), m.ui.engine.Selection().Filter)
			return m.apply(domain.FilterSelected(next))
		case tea.KeyShiftTab:
			next := cycle(domain.Sorts(), m.ui.engine.Selection().Sort)
			return m.apply(domain.SortSelected(next))
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			ev, err := m.ui.parser.Parse(m.ctx, v)
			if err != nil {
				m.ui.log.Error("parsing input: %v", err)
				m.status = m.ui.theme.Urgent(err.Error())
				return m, nil
			}
			m.ui.log.Debug("event: %s (payload=%q)", ev.Kind, ev.Payload)
			return m.apply(*ev)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		promptLen := len(m.input.Prompt)
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply handles one event to completion before the next message is read.
func (m model) apply(ev domain.Event) (tea.Model, tea.Cmd) {
	theme := m.ui.theme

	switch ev.Kind {
	case domain.EventFilterSelected, domain.EventSortSelected:
		if _, err := m.ui.engine.Dispatch(m.ctx, ev); err != nil {
			m.ui.log.Error("dispatch %s: %v", ev.Kind, err)
			m.status = theme.Urgent(err.Error())
			return m, nil
		}
		m.status = ""
	case domain.EventShowRecipe:
		r, err := m.ui.engine.Lookup(m.ctx, ev.Payload)
		if err != nil {
			m.status = theme.Urgent(fmt.Sprintf("No recipe %q.", ev.Payload))
			return m, nil
		}
		m.status = theme.Card(r)
	case domain.EventHelp:
		lines := strings.Split(helpText, "\n")
		for i, l := range lines {
			lines[i] = theme.Hint(l)
		}
		m.status = strings.Join(lines, "\n")
	case domain.EventQuit:
		return m, tea.Quit
	default:
		m.status = theme.Hint(fmt.Sprintf(`Didn't catch %q. Type "help" for commands.`, ev.Payload))
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.ui.screen.String())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// cycle returns the tag after cur in tags, wrapping around. Unknown tags
// restart from the first one.
func cycle[T comparable](tags []T, cur T) T {
	for i, t := range tags {
		if t == cur {
			return tags[(i+1)%len(tags)]
		}
	}
	return tags[0]
}
