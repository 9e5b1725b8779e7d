package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"thinknest/internal/domain"
)

// AnswerPort is the TUI-facing subset of the QA engine.
type AnswerPort interface {
	Answer(query string, chunks []domain.Chunk, mode domain.AnswerMode) string
}

// Message is a single chat transcript entry.
type Message struct {
	ID        string
	Content   string
	IsUser    bool
	Timestamp time.Time
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	service  AnswerPort
	kb       *domain.KnowledgeBase
	mode     domain.AnswerMode
	messages []Message
	input    textinput.Model
	viewport viewport.Model
	status   string
	ready    bool
}

// New creates a chat model over a loaded knowledge base.
func New(service AnswerPort, kb *domain.KnowledgeBase, mode domain.AnswerMode) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{
		service:  service,
		kb:       kb,
		mode:     mode,
		input:    ti,
		viewport: vp,
		status:   fmt.Sprintf("Mode: %s  (ctrl+t toggle, ctrl+l clear, ctrl+s export, ctrl+c quit)", mode),
	}
	welcome := fmt.Sprintf("Welcome! You can get answers in Short or Detailed mode.\nBased on: %q", kb.Filename)
	m.messages = append(m.messages, Message{
		ID:        uuid.NewString(),
		Content:   welcome,
		Timestamp: time.Now(),
	})
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + kb line
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.messages = append(m.messages, Message{
					ID:        uuid.NewString(),
					Content:   q,
					IsUser:    true,
					Timestamp: time.Now(),
				})
				ans := m.service.Answer(q, m.kb.Chunks, m.mode)
				m.messages = append(m.messages, Message{
					ID:        uuid.NewString(),
					Content:   ans,
					Timestamp: time.Now(),
				})
				m.input.SetValue("")
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		case "ctrl+t":
			if m.mode == domain.ModeShort {
				m.mode = domain.ModeDetailed
			} else {
				m.mode = domain.ModeShort
			}
			m.status = fmt.Sprintf("Mode: %s", m.mode)
			return m, nil
		case "ctrl+l":
			m.messages = nil
			m.viewport.SetContent(m.renderTranscript())
			return m, nil
		case "ctrl+s":
			name, err := exportTranscript(m.messages)
			if err != nil {
				m.status = "Export failed: " + err.Error()
			} else {
				m.status = "Chat exported to " + name
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and chat transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("ThinkNest")
	kbLine := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
		fmt.Sprintf("Knowledge base: %s (%d chunks)", m.kb.Filename, len(m.kb.Chunks)))
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + kbLine + "\n" + transcript + "\n" + input + "\n" + status
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userLabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	aiLabelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	timeStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) renderTranscript() string {
	if len(m.messages) == 0 {
		return "No messages yet."
	}
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label := aiLabelStyle.Render("AI")
		if msg.IsUser {
			label = userLabelStyle.Render("You")
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(timeStyle.Render(msg.Timestamp.Format("15:04:05")))
		b.WriteString("\n")
		b.WriteString(msg.Content)
	}
	return b.String()
}

func exportTranscript(messages []Message) (string, error) {
	name := fmt.Sprintf("chat-history-%s.txt", time.Now().Format("2006-01-02"))
	var b strings.Builder
	for _, msg := range messages {
		author := "AI"
		if msg.IsUser {
			author = "You"
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n\n", msg.Timestamp.Format("2006-01-02 15:04:05"), author, msg.Content)
	}
	if err := os.WriteFile(name, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
