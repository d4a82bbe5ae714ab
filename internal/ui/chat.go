package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/sejong/internal/app"
)

// exitDelay keeps the farewell on screen briefly before the program quits.
const exitDelay = 800 * time.Millisecond

// Conversation is the session behind the chat window.
type Conversation interface {
	Greeting() string
	Handle(line string) app.Response
}

type entry struct {
	fromUser bool
	isErr    bool
	text     string
}

type exitMsg struct{}

// ChatModel is a bubbletea model that shows the conversation as dialog
// bubbles above a single-line input.
type ChatModel struct {
	conv     Conversation
	theme    Theme
	input    textinput.Model
	viewport viewport.Model
	entries  []entry
	width    int
	height   int
	ready    bool
	exiting  bool
}

// NewChatModel starts a chat with the session greeting.
func NewChatModel(conv Conversation, theme Theme) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "todo read book"
	ti.Prompt = "> "
	// No limit: the session accepts lines of any length.
	ti.CharLimit = 0
	ti.Focus()

	return ChatModel{
		conv:    conv,
		theme:   theme,
		input:   ti,
		entries: []entry{{text: conv.Greeting()}},
	}
}

// RunChat runs the chat window until the user says bye or presses Esc.
func RunChat(conv Conversation, theme Theme) error {
	p := tea.NewProgram(NewChatModel(conv, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running chat: %w", err)
	}
	return nil
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		vpHeight := max(msg.Height-lipgloss.Height(m.headerView())-lipgloss.Height(m.inputView()), 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = max(msg.Width-8, 10)
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.exiting {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()
			m.submit(line)
			m.refresh()
			if m.exiting {
				return m, tea.Tick(exitDelay, func(time.Time) tea.Msg { return exitMsg{} })
			}
			return m, nil
		}

	case exitMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit records one exchange. An empty line shows the greeting again.
func (m *ChatModel) submit(line string) {
	if strings.TrimSpace(line) == "" {
		m.entries = append(m.entries, entry{text: m.conv.Greeting()})
		return
	}
	m.entries = append(m.entries, entry{fromUser: true, text: line})

	resp := m.conv.Handle(line)
	m.entries = append(m.entries, entry{text: resp.Message(), isErr: resp.Err != nil})
	if resp.Exit {
		m.exiting = true
		m.input.Blur()
	}
}

func (m *ChatModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoBottom()
}

func (m ChatModel) renderEntries() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	maxBubble := max(width*3/4, 20)

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		style := m.theme.Bot
		speaker := "Sejong"
		align := lipgloss.Left
		switch {
		case e.fromUser:
			style = m.theme.User
			speaker = "You"
			align = lipgloss.Right
		case e.isErr:
			style = m.theme.Error
		}

		body := style.Width(min(lipgloss.Width(e.text)+4, maxBubble)).Render(e.text)
		block := lipgloss.JoinVertical(align, m.theme.Speaker.Render(speaker), body)
		blocks = append(blocks, lipgloss.PlaceHorizontal(width, align, block))
	}
	return strings.Join(blocks, "\n")
}

func (m ChatModel) headerView() string {
	return m.theme.Header.Render("Sejong") + m.theme.Subtle.Render("  enter to send • esc to quit")
}

func (m ChatModel) inputView() string {
	return m.theme.Input.Render(m.input.View())
}

func (m ChatModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.inputView())
}
