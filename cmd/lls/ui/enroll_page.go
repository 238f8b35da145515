package ui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type enrollOptionsMsg struct {
	available []api.Course
	err       error
}

type enrollDoneMsg struct{ err error }

// EnrollPage lists the courses the student can still join. The available
// set is the full catalog minus current enrollments, loaded as one join.
type EnrollPage struct {
	app *App

	available []api.Course
	cursor    int
	loading   bool
	busy      bool
	errText   string

	spinner spinner.Model
	width   int
	height  int
}

func NewEnrollPage(app *App) *EnrollPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &EnrollPage{app: app, spinner: sp, loading: true}
}

func (p *EnrollPage) Title() string    { return "Enroll" }
func (p *EnrollPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *EnrollPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

// availableCourses removes already-enrolled courses from the catalog.
func availableCourses(all, enrolled []api.Course) []api.Course {
	taken := make(map[int]bool, len(enrolled))
	for _, c := range enrolled {
		taken[c.ID] = true
	}
	var out []api.Course
	for _, c := range all {
		if !taken[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func (p *EnrollPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()

		var all, mine []api.Course
		err := api.FetchAll(ctx,
			func(ctx context.Context) error {
				var err error
				all, err = p.app.client.Courses().List(ctx)
				return err
			},
			func(ctx context.Context) error {
				var err error
				mine, err = p.app.client.StudentPortal().Courses(ctx, studentID)
				return err
			},
		)
		if err != nil {
			return enrollOptionsMsg{err: err}
		}
		return enrollOptionsMsg{available: availableCourses(all, mine)}
	}
}

func (p *EnrollPage) enrollCmd(courseID int) tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return enrollDoneMsg{err: p.app.client.StudentPortal().Enroll(ctx, studentID, courseID)}
	}
}

func (p *EnrollPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case enrollOptionsMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load courses")
		}
		p.errText = ""
		p.available = msg.available
		if p.cursor >= len(p.available) {
			p.cursor = 0
		}
		return p, nil

	case enrollDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Enrollment failed")
		}
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Enrolled"), p.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.available)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "enter":
			if p.cursor < len(p.available) {
				p.busy = true
				return p, p.enrollCmd(p.available[p.cursor].ID)
			}
		}
	}
	return p, nil
}

func (p *EnrollPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading courses..."
	}

	var body string
	switch {
	case p.errText != "":
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.available) == 0:
		body = s.Muted.Render("You are enrolled in every available course.")
	default:
		table := NewSimpleTable("", []string{"ID", "Code", "Name"})
		for _, c := range p.available {
			table.AddRow(strconv.Itoa(c.ID), c.CourseCode, c.CourseName)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	hint := "j/k move  enter enroll  r reload"
	if p.busy {
		hint = "Enrolling..."
	}
	return s.Title.Render("Available Courses") + "\n" + body + "\n" + s.Muted.Render(hint)
}
