package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type messageLoadedMsg struct {
	message *api.Message
	err     error
}

type markReadDoneMsg struct{ err error }

// MessagePage renders one message. The body goes through the markdown
// renderer; opening an unread received message marks it read.
type MessagePage struct {
	app       *App
	messageID int

	message *api.Message
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewMessagePage(app *App, messageID int) *MessagePage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &MessagePage{app: app, messageID: messageID, spinner: sp, loading: true}
}

func (p *MessagePage) Title() string    { return fmt.Sprintf("Message %d", p.messageID) }
func (p *MessagePage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *MessagePage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *MessagePage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		message, err := p.app.client.Messages().Get(ctx, p.messageID)
		return messageLoadedMsg{message: message, err: err}
	}
}

func (p *MessagePage) markReadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return markReadDoneMsg{err: p.app.client.Messages().MarkRead(ctx, p.messageID)}
	}
}

// isRecipient reports whether the signed-in user received this message.
func (p *MessagePage) isRecipient(m *api.Message) bool {
	prin := p.app.principal()
	return prin != nil && m.ReceiverType == string(prin.Role) && m.ReceiverID == prin.ID
}

func (p *MessagePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case messageLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load message")
		}
		p.errText = ""
		p.message = msg.message
		if !p.message.IsRead && p.isRecipient(p.message) {
			p.message.IsRead = true
			return p, p.markReadCmd()
		}
		return p, nil

	case markReadDoneMsg:
		// Best effort; the unread badge reconciles on the next poll.
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			return p, Navigate(RouteInbox, 0)
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		}
	}
	return p, nil
}

// renderBody runs the message text through glamour, falling back to the
// raw text when rendering fails.
func (p *MessagePage) renderBody(text string) string {
	width := p.width - 4
	if width < 20 {
		width = 72
	}
	style := glamour.WithStandardStyle("light")
	if p.app.styles.Theme.IsDark {
		style = glamour.WithStandardStyle("dark")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (p *MessagePage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading message..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if p.message == nil {
		return s.Muted.Render("Message not found.")
	}

	m := p.message
	var sb strings.Builder
	sb.WriteString(s.Title.Render(m.Subject))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(fmt.Sprintf("from %s (%s) · to %s (%s) · %s",
		m.SenderName, m.SenderType, m.ReceiverName, m.ReceiverType, m.SentAt)))
	sb.WriteString("\n")
	sb.WriteString(s.RenderDivider(p.width - 4))
	sb.WriteString("\n")
	sb.WriteString(p.renderBody(m.Message))
	sb.WriteString("\n\n" + s.Muted.Render("b back to messages"))
	return sb.String()
}
