package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type courseMaterialsLoadedMsg struct {
	materials []api.StudyMaterial
	err       error
}

type materialDeletedMsg struct{ err error }

// CourseVideosPage is the staff material manager for one course: list the
// uploaded materials, add new ones, delete with confirmation.
type CourseVideosPage struct {
	app      *App
	courseID int

	materials []api.StudyMaterial
	cursor    int
	loading   bool
	errText   string

	confirming bool
	confirmID  int

	spinner spinner.Model
	width   int
	height  int
}

func NewCourseVideosPage(app *App, courseID int) *CourseVideosPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &CourseVideosPage{app: app, courseID: courseID, spinner: sp, loading: true}
}

func (p *CourseVideosPage) Title() string    { return fmt.Sprintf("Course %d Materials", p.courseID) }
func (p *CourseVideosPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *CourseVideosPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *CourseVideosPage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		materials, err := p.app.client.StudyMaterials().ByCourse(ctx, p.courseID)
		return courseMaterialsLoadedMsg{materials: materials, err: err}
	}
}

func (p *CourseVideosPage) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return materialDeletedMsg{err: p.app.client.StudyMaterials().Delete(ctx, id)}
	}
}

func (p *CourseVideosPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case courseMaterialsLoadedMsg:
		p.loading = false
		p.confirming = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load materials")
		}
		p.errText = ""
		p.materials = msg.materials
		if p.cursor >= len(p.materials) {
			p.cursor = 0
		}
		return p, nil

	case materialDeletedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Delete failed")
		}
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Material deleted"), p.loadCmd())

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
			if p.cursor < len(p.materials)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "n":
			return p, Navigate(RouteVideoNew, p.courseID)
		case "d", "delete":
			if p.cursor < len(p.materials) {
				p.confirming = true
				p.confirmID = p.materials[p.cursor].ID
			}
		case "b":
			return p, Navigate(RouteMyCourses, 0)
		}
	}
	return p, nil
}

func (p *CourseVideosPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading materials..."
	}

	var body string
	switch {
	case p.errText != "":
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.materials) == 0:
		body = s.Muted.Render("No materials for this course yet. Press n to add one.")
	default:
		table := NewSimpleTable("", []string{"ID", "Title", "Type", "Uploaded"})
		for _, m := range p.materials {
			table.AddRow(strconv.Itoa(m.ID), truncate(m.Title, 40), m.FileType, m.UploadDate)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	out := s.Title.Render(p.Title()) + "\n" + body + "\n" +
		s.Muted.Render("j/k move  n add  d delete  b back  r reload")

	if p.confirming {
		modal := s.ModalBox.Render("Delete this material?\n\n[y] yes   [n] cancel")
		out += "\n" + lipgloss.Place(p.width, 5, lipgloss.Center, lipgloss.Center, modal)
	}
	return out
}
