// Package preview is an interactive terminal browser for generated token
// sets: industries on the left, the rendered set on the right.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/tokenforge/pkg/render"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Options configures a preview session.
type Options struct {
	Industry  string // initially selected; resolved like any industry label
	Tone      string
	Overrides *tokens.BrandOverrides
	Theme     render.Theme
	Logger    zerolog.Logger
}

// Run launches the preview and blocks until the user quits or ctx ends.
// Cancelling ctx is a clean shutdown, not an error.
func Run(ctx context.Context, opts Options) error {
	return run(ctx, opts, tea.WithAltScreen())
}

func run(ctx context.Context, opts Options, extra ...tea.ProgramOption) error {
	program := tea.NewProgram(newModel(opts), append([]tea.ProgramOption{tea.WithContext(ctx)}, extra...)...)
	_, err := program.Run()
	return stopped(ctx, err, opts.Logger)
}

// stopped drops the kill error a program reports after ctx was cancelled.
func stopped(ctx context.Context, err error, logger zerolog.Logger) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Debug().Err(ctx.Err()).Msg("preview stopped")
		return nil
	}
	return err
}

// view selects what the detail pane shows.
type view int

const (
	viewTokens view = iota
	viewStylesheet
	viewFramework
)

func (v view) String() string {
	return [...]string{"tokens", "css", "framework"}[v]
}

type styles struct {
	title    lipgloss.Style
	list     lipgloss.Style
	detail   lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
	status   lipgloss.Style
}

func newStyles(theme render.Theme) styles {
	return styles{
		title:    theme.Heading.Padding(0, 1),
		list:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		detail:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		selected: theme.Value.Bold(true),
		item:     theme.Key,
		status:   theme.Muted.Padding(0, 1),
	}
}

type model struct {
	gen        *tokens.Generator
	theme      render.Theme
	styles     styles
	industries []string
	tones      []string
	overrides  *tokens.BrandOverrides
	selected   int
	tone       int
	view       view
	viewport   viewport.Model
	ready      bool
	width      int
	height     int
	listWidth  int
}

func newModel(opts Options) model {
	theme := opts.Theme
	if theme.Name == "" {
		theme = render.DefaultTheme()
	}
	m := model{
		gen:        tokens.NewGenerator(opts.Logger),
		theme:      theme,
		styles:     newStyles(theme),
		industries: tokens.Industries(),
		tones:      tokens.Tones(),
		overrides:  opts.Overrides,
		viewport:   viewport.New(0, 0),
	}
	start := tokens.ResolveIndustry(opts.Industry).Baseline
	for i, id := range m.industries {
		if id == start {
			m.selected = i
		}
	}
	tone := opts.Tone
	if _, ok := tokens.LookupTone(tone); !ok {
		tone = tokens.DefaultTone
	}
	for i, t := range m.tones {
		if t == strings.ToLower(strings.TrimSpace(tone)) {
			m.tone = i
		}
	}
	for _, id := range m.industries {
		m.listWidth = max(m.listWidth, len(id)+6)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.industries)-1 {
				m.selected++
				m.refreshViewport()
			}
		case "tab":
			m.tone = (m.tone + 1) % len(m.tones)
			m.refreshViewport()
		case "shift+tab":
			m.tone = (m.tone + len(m.tones) - 1) % len(m.tones)
			m.refreshViewport()
		case "v":
			m.view = (m.view + 1) % 3
			m.refreshViewport()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = min(m.listWidth, m.width/3)
		m.viewport.Width = max(m.width-m.listWidth-8, 20)
		m.viewport.Height = max(m.height-6, 5)
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

// current generates the token set for the selected industry and tone.
func (m model) current() tokens.TokenSet {
	return m.gen.Generate(tokens.Request{
		Industry:  m.industries[m.selected],
		Tone:      m.tones[m.tone],
		Overrides: m.overrides,
	})
}

func (m *model) refreshViewport() {
	ts := m.current()
	var content string
	switch m.view {
	case viewStylesheet:
		content = render.NewStylesheet(zerolog.Nop()).Render(ts)
	case viewFramework:
		content = render.NewFramework().Render(ts)
	default:
		content = render.NewTerminal(m.theme, m.viewport.Width).Render(ts)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "Loading preview..."
	}
	contentHeight := max(m.height-6, 5)

	title := m.styles.title.Render(fmt.Sprintf("tokenforge · %s · %s",
		m.industries[m.selected], displayName(m.tones[m.tone])))

	listLines := make([]string, 0, len(m.industries))
	for i, id := range m.industries {
		if i == m.selected {
			listLines = append(listLines, m.styles.selected.Render("▶ "+id))
		} else {
			listLines = append(listLines, m.styles.item.Render("  "+id))
		}
	}
	listPanel := m.styles.list.Width(m.listWidth).Height(contentHeight).
		Render(strings.Join(fit(listLines, contentHeight, m.selected), "\n"))

	detailPanel := m.styles.detail.Width(m.viewport.Width + 2).Height(contentHeight).
		Render(m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.styles.status.Render(fmt.Sprintf(
		"↑/↓ industry • tab tone • v view (%s) • pgup/pgdn scroll • q quit", m.view))
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

// fit returns a window of lines of at most height that keeps focus visible.
func fit(lines []string, height, focus int) []string {
	if len(lines) <= height {
		return lines
	}
	start := min(max(focus-height/2, 0), len(lines)-height)
	return lines[start : start+height]
}

// displayName turns a registry key into a label, e.g. "real-estate" -> "Real Estate".
func displayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "-", " "))
}
