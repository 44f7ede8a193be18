package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/highlight"
	"codeberg.org/snonux/cardstudy/internal/render"
	"codeberg.org/snonux/cardstudy/internal/session"
)

const title = "Speaking Flashcards"

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleTab       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	styleActiveTab = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("14")).Underline(true)
	styleCounter   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleVerb      = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	styleSource    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleTarget    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCard      = lipgloss.NewStyle().Padding(1, 2)
)

// Model is the bubbletea model of a study session
type Model struct {
	ctrl  *session.Controller
	state session.State
	width int

	quitting bool
}

// New starts a session on kind
func New(ctrl *session.Controller, kind card.Kind) Model {
	return Model{ctrl: ctrl, state: ctrl.Start(kind)}
}

// State returns the current session state
func (m Model) State() session.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "s":
			m.state = m.ctrl.Dispatch(m.state, session.ActionShuffle)
			return m, nil
		case "1", "2", "3":
			kind := card.Kinds[int(key[0]-'1')]
			m.state = m.ctrl.Dispatch(m.state, session.CategoryAction(kind))
			return m, nil
		}
		if action, ok := session.KeyAction(key); ok {
			m.state = m.ctrl.Dispatch(m.state, action)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.ctrl.View(m.state)
	var b strings.Builder

	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n")

	body := m.cardBody(v)
	if m.width > 4 {
		body = styleCard.Width(m.width - 2).Render(body)
	} else {
		body = styleCard.Render(body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(styleSubtle.Render("space reveal · → next · s shuffle · 1-3 category · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) tabs() string {
	tabs := make([]string, 0, len(card.Kinds))
	for i, kind := range card.Kinds {
		label := string(rune('1'+i)) + " " + kind.Label()
		if kind == m.state.Category {
			tabs = append(tabs, styleActiveTab.Render(label))
		} else {
			tabs = append(tabs, styleTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) cardBody(v render.View) string {
	var lines []string

	lines = append(lines, styleCounter.Render(v.Counter))
	if v.VerbGroup != "" {
		lines = append(lines, styleVerb.Render(v.VerbGroup))
	}
	lines = append(lines, "", styled(v.Primary))

	if !v.Empty {
		lines = append(lines, "")
		if v.Revealed {
			lines = append(lines, styled(v.VisibleSecondary()))
		} else {
			lines = append(lines, styleSubtle.Render("(press space to show English)"))
		}
	}
	return strings.Join(lines, "\n")
}

// styled renders highlighted runs of t in the colour of its language
func styled(t render.Text) string {
	style := styleTarget
	if t.Language == highlight.Source {
		style = styleSource
	}

	var b strings.Builder
	for _, seg := range t.Segments {
		if seg.Marked {
			b.WriteString(style.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Run starts the terminal UI and blocks until the user quits
func Run(ctrl *session.Controller, kind card.Kind) error {
	p := tea.NewProgram(New(ctrl, kind), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
