package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListRow is one record in a list page: the cells to render plus the id
// used for delete and drill-down navigation.
type ListRow struct {
	ID    int
	Cells []string
}

// ListConfig declares a resource list screen. Every admin and staff list
// page is an instance of this; the per-resource differences are the
// loader, the columns and the follow-up routes.
type ListConfig struct {
	PageTitle string
	Headers   []string
	Load      func(ctx context.Context) ([]ListRow, error)
	// Delete is nil when the resource cannot be deleted from this screen.
	Delete func(ctx context.Context, id int) error
	// NewRoute, when set, is reachable with "n".
	NewRoute Route
	// OpenRoute, when set, is reached with enter and receives the row id.
	OpenRoute Route
	// EmptyText replaces the default empty-state line.
	EmptyText string
}

type listLoadedMsg struct{ rows []ListRow }
type listFailedMsg struct{ err error }
type listDeletedMsg struct{ err error }

// ListPage is the generic list controller: spinner while loading, table
// when loaded, inline error banner on failure, confirm modal before any
// delete.
type ListPage struct {
	app *App
	cfg ListConfig

	rows    []ListRow
	cursor  int
	loading bool
	errText string

	confirming bool // delete confirm modal open
	confirmID  int  // row targeted when the modal opened

	spinner spinner.Model
	width   int
	height  int
}

// NewListPage builds a list page from its declaration.
func NewListPage(app *App, cfg ListConfig) *ListPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &ListPage{app: app, cfg: cfg, spinner: sp, loading: true}
}

func (p *ListPage) Title() string { return p.cfg.PageTitle }

func (p *ListPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *ListPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *ListPage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		rows, err := p.cfg.Load(ctx)
		if err != nil {
			return listFailedMsg{err: err}
		}
		return listLoadedMsg{rows: rows}
	}
}

func (p *ListPage) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return listDeletedMsg{err: p.cfg.Delete(ctx, id)}
	}
}

func (p *ListPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		p.loading = false
		p.errText = ""
		p.rows = msg.rows
		// The rows under an open confirm modal just changed; drop the
		// modal rather than let it act on a row that may be gone.
		p.confirming = false
		if p.cursor >= len(p.rows) {
			p.cursor = 0
		}
		return p, nil

	case listFailedMsg:
		// One error policy everywhere: inline banner plus a toast.
		p.loading = false
		p.rows = nil
		p.errText = msg.err.Error()
		return p, ShowToast(ToastError, "Failed to load "+p.cfg.PageTitle)

	case listDeletedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Delete failed")
		}
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Deleted"), p.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.confirming {
			return p.updateConfirm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.rows)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "n":
			if p.cfg.NewRoute != "" {
				return p, Navigate(p.cfg.NewRoute, 0)
			}
		case "enter":
			if p.cfg.OpenRoute != "" && p.cursor < len(p.rows) {
				return p, Navigate(p.cfg.OpenRoute, p.rows[p.cursor].ID)
			}
		case "d", "delete":
			if p.cfg.Delete != nil && p.cursor < len(p.rows) {
				p.confirming = true
				p.confirmID = p.rows[p.cursor].ID
			}
		}
	}
	return p, nil
}

// updateConfirm handles the delete confirmation modal. The facade is only
// invoked on an explicit yes; anything else leaves the list untouched.
func (p *ListPage) updateConfirm(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p.confirming = false
		return p, p.deleteCmd(p.confirmID)
	case "n", "N", "esc":
		p.confirming = false
	}
	return p, nil
}

func (p *ListPage) View() string {
	if p.loading {
		return p.app.styles.Content.Render(p.spinner.View() + " Loading " + p.cfg.PageTitle + "...")
	}

	var body string
	switch {
	case p.errText != "":
		body = p.app.styles.ErrorBox.Render("Error: "+p.errText) + "\n" +
			p.app.styles.Muted.Render("press r to retry")
	case len(p.rows) == 0:
		empty := p.cfg.EmptyText
		if empty == "" {
			empty = "Nothing here yet."
		}
		body = p.app.styles.Muted.Render(empty)
	default:
		table := NewSimpleTable("", p.cfg.Headers)
		for _, r := range p.rows {
			table.AddRow(r.Cells...)
		}
		table.Selected = p.cursor
		body = table.View(p.app.styles)
	}

	hints := "j/k move  r reload"
	if p.cfg.NewRoute != "" {
		hints += "  n new"
	}
	if p.cfg.OpenRoute != "" {
		hints += "  enter open"
	}
	if p.cfg.Delete != nil {
		hints += "  d delete"
	}
	out := p.app.styles.Title.Render(p.cfg.PageTitle) + "\n" + body + "\n" + p.app.styles.Muted.Render(hints)

	if p.confirming {
		modal := p.app.styles.ModalBox.Render("Delete this record?\n\n[y] yes   [n] cancel")
		out += "\n" + lipgloss.Place(p.width, 5, lipgloss.Center, lipgloss.Center, modal)
	}
	return out
}
