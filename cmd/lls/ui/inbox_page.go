package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type mailboxLoadedMsg struct {
	messages []api.Message
	sent     bool
	err      error
}

type messageDeletedMsg struct{ err error }

// InboxPage shows received and sent mail behind two tabs. Opening a
// message navigates to its detail page.
type InboxPage struct {
	app *App

	messages []api.Message
	sentTab  bool
	cursor   int
	loading  bool
	errText  string

	confirming bool
	confirmID  int

	spinner spinner.Model
	width   int
	height  int
}

func NewInboxPage(app *App) *InboxPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &InboxPage{app: app, spinner: sp, loading: true}
}

func (p *InboxPage) Title() string    { return "Messages" }
func (p *InboxPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *InboxPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *InboxPage) loadCmd() tea.Cmd {
	userType, userID := "", 0
	if prin := p.app.principal(); prin != nil {
		userType, userID = string(prin.Role), prin.ID
	}
	sent := p.sentTab
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		var messages []api.Message
		var err error
		if sent {
			messages, err = p.app.client.Messages().Sent(ctx, userType, userID)
		} else {
			messages, err = p.app.client.Messages().Inbox(ctx, userType, userID)
		}
		return mailboxLoadedMsg{messages: messages, sent: sent, err: err}
	}
}

func (p *InboxPage) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return messageDeletedMsg{err: p.app.client.Messages().Delete(ctx, id)}
	}
}

func (p *InboxPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case mailboxLoadedMsg:
		if msg.sent != p.sentTab {
			// Stale reply from before a tab switch.
			return p, nil
		}
		p.loading = false
		p.confirming = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load messages")
		}
		p.errText = ""
		p.messages = msg.messages
		if p.cursor >= len(p.messages) {
			p.cursor = 0
		}
		return p, nil

	case messageDeletedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Delete failed")
		}
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Message deleted"), p.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.confirming {
			switch msg.String() {
			case "y", "Y":
				p.confirming = false
				return p, p.deleteCmd(p.confirmID)
			case "n", "N", "esc":
				p.confirming = false
			}
			return p, nil
		}
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.messages)-1 {
				p.cursor++
			}
		case "tab":
			p.sentTab = !p.sentTab
			p.cursor = 0
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "n":
			return p, Navigate(RouteCompose, 0)
		case "enter":
			if p.cursor < len(p.messages) {
				return p, Navigate(RouteMessage, p.messages[p.cursor].ID)
			}
		case "d", "delete":
			if p.cursor < len(p.messages) {
				p.confirming = true
				p.confirmID = p.messages[p.cursor].ID
			}
		}
	}
	return p, nil
}

func (p *InboxPage) View() string {
	s := p.app.styles

	inboxTab, sentTab := s.NavItemActive.Render("Inbox"), s.NavItem.Render("Sent")
	if p.sentTab {
		inboxTab, sentTab = s.NavItem.Render("Inbox"), s.NavItemActive.Render("Sent")
	}
	tabs := inboxTab + " " + sentTab

	if p.loading {
		return tabs + "\n\n" + p.spinner.View() + " Loading messages..."
	}

	var body string
	switch {
	case p.errText != "":
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.messages) == 0:
		body = s.Muted.Render("No messages here.")
	default:
		table := NewSimpleTable("", []string{"ID", "From/To", "Subject", "Sent", "Read"})
		for _, m := range p.messages {
			who := m.SenderName
			if p.sentTab {
				who = m.ReceiverName
			}
			read := ""
			if !m.IsRead {
				read = "●"
			}
			table.AddRow(strconv.Itoa(m.ID), who, truncate(m.Subject, 32), m.SentAt, read)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	out := tabs + "\n\n" + body + "\n" +
		s.Muted.Render("tab switch  j/k move  enter open  n compose  d delete  r reload")

	if p.confirming {
		modal := s.ModalBox.Render("Delete this message?\n\n[y] yes   [n] cancel")
		out += "\n" + lipgloss.Place(p.width, 5, lipgloss.Center, lipgloss.Center, modal)
	}
	return out
}
