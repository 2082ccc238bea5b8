package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tdl/internal/engine"
	"tdl/internal/token"
)

var (
	paneTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	selectedLine = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// pane identifies which of the three panes has input focus.
type pane int

const (
	paneTokens pane = iota
	paneOutline
	paneDiagnostics
)

// Model is the Bubble Tea model for `tdl browse`.
type Model struct {
	path    string
	result  engine.Result
	tokens  []token.Token
	outline []outlineLine
	focus   pane
	cursor  [3]int
	width   int
	height  int
}

// New builds a browse Model over one file's source text. tokens is the
// full trivia-inclusive stream from engine.Tokenize; result is the
// engine.Analyze output for the same text.
func New(path, source string) Model {
	result := engine.Analyze(source)
	return Model{
		path:    path,
		result:  result,
		tokens:  engine.Tokenize(source),
		outline: buildOutline(result.AST),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % 3
		case "up", "k":
			if m.cursor[m.focus] > 0 {
				m.cursor[m.focus]--
			}
		case "down", "j":
			if m.cursor[m.focus] < m.paneLen(m.focus)-1 {
				m.cursor[m.focus]++
			}
		case "enter":
			if m.focus == paneOutline {
				m.jumpToDiagnostic()
			}
		}
	}
	return m, nil
}

// jumpToDiagnostic switches focus to the diagnostics pane and moves its
// cursor to the first diagnostic whose span falls inside the outline
// pane's currently selected node, if any.
func (m *Model) jumpToDiagnostic() {
	if len(m.outline) == 0 {
		return
	}
	sel := m.outline[m.cursor[paneOutline]]
	for i, d := range m.result.Diagnostics {
		if diagnosticInSpan(d.Span.Offset, sel.span) {
			m.focus = paneDiagnostics
			m.cursor[paneDiagnostics] = i
			return
		}
	}
}

func (m Model) paneLen(p pane) int {
	switch p {
	case paneTokens:
		return len(m.tokens)
	case paneOutline:
		return len(m.outline)
	default:
		return len(m.result.Diagnostics)
	}
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	colWidth := width / 3
	if colWidth < 20 {
		colWidth = 20
	}

	tokens := m.renderTokens(colWidth)
	outline := m.renderOutline(colWidth)
	diags := m.renderDiagnostics(colWidth)

	row := lipgloss.JoinHorizontal(lipgloss.Top, tokens, outline, diags)
	footer := "tab: switch pane  up/down: move  enter: jump to diagnostics  q: quit"
	return row + "\n" + footer
}

func (m Model) renderTokens(width int) string {
	var b strings.Builder
	b.WriteString(paneTitle.Render(fmt.Sprintf("tokens (%s)", m.path)))
	b.WriteString("\n")
	for i, t := range m.tokens {
		line := fmt.Sprintf("%-11s %s", t.Kind.String(), runewidth.Truncate(t.Text, width-13, "…"))
		b.WriteString(styleLine(line, m.focus == paneTokens && i == m.cursor[paneTokens]))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m Model) renderOutline(width int) string {
	var b strings.Builder
	b.WriteString(paneTitle.Render("outline"))
	b.WriteString("\n")
	for i, l := range m.outline {
		line := strings.Repeat("  ", l.depth) + l.label
		b.WriteString(styleLine(line, m.focus == paneOutline && i == m.cursor[paneOutline]))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m Model) renderDiagnostics(width int) string {
	var b strings.Builder
	b.WriteString(paneTitle.Render("diagnostics"))
	b.WriteString("\n")
	for i, d := range m.result.Diagnostics {
		rule := d.Rule
		if rule == "" {
			rule = "syntax"
		}
		line := fmt.Sprintf("%s %s: %s", d.Span.String(), rule, d.Message)
		styled := severityColor(d.Severity.String()).Render(runewidth.Truncate(line, width-2, "…"))
		b.WriteString(styleLine(styled, m.focus == paneDiagnostics && i == m.cursor[paneDiagnostics]))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func styleLine(s string, selected bool) string {
	if selected {
		return selectedLine.Render(s)
	}
	return s
}

func severityColor(sev string) lipgloss.Style {
	switch sev {
	case "error":
		return errorStyle
	case "warning":
		return warningStyle
	default:
		return lipgloss.NewStyle()
	}
}
