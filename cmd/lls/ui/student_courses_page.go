package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type studentCoursesMsg struct {
	courses []api.Course
	err     error
}

// StudentCoursesPage lists the student's enrolled courses. Enter opens the
// course's materials, q jumps straight to its quiz.
type StudentCoursesPage struct {
	app *App

	courses []api.Course
	cursor  int
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewStudentCoursesPage(app *App) *StudentCoursesPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &StudentCoursesPage{app: app, spinner: sp, loading: true}
}

func (p *StudentCoursesPage) Title() string    { return "My Courses" }
func (p *StudentCoursesPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *StudentCoursesPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *StudentCoursesPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		courses, err := p.app.client.StudentPortal().Courses(ctx, studentID)
		return studentCoursesMsg{courses: courses, err: err}
	}
}

func (p *StudentCoursesPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case studentCoursesMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load courses")
		}
		p.errText = ""
		p.courses = msg.courses
		if p.cursor >= len(p.courses) {
			p.cursor = 0
		}
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.courses)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "enter":
			if p.cursor < len(p.courses) {
				return p, Navigate(RouteCourseMaterials, p.courses[p.cursor].ID)
			}
		case "q":
			if p.cursor < len(p.courses) {
				return p, Navigate(RouteQuizPlayer, p.courses[p.cursor].ID)
			}
		case "f":
			if p.cursor < len(p.courses) {
				return p, Navigate(RouteFeedbackNew, p.courses[p.cursor].ID)
			}
		}
	}
	return p, nil
}

func (p *StudentCoursesPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading courses..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if len(p.courses) == 0 {
		return s.Muted.Render("You are not enrolled in any courses yet. Visit Enroll to join one.")
	}

	var sb strings.Builder
	for i, c := range p.courses {
		body := s.Bold.Render(c.CourseName) + "\n" + s.Muted.Render(c.CourseCode)
		rendered := s.Card.Render(body)
		if i == p.cursor {
			rendered = s.Card.BorderForeground(s.Theme.Primary).Render(body)
		}
		sb.WriteString(rendered + "\n")
	}
	sb.WriteString(s.Muted.Render("j/k move  enter materials  q quiz  f feedback  r reload"))
	return sb.String()
}

type courseMaterialsMsg struct {
	materials []api.StudyMaterial
	err       error
}

// CourseMaterialsPage shows one course's study materials to the student.
type CourseMaterialsPage struct {
	app      *App
	courseID int

	materials []api.StudyMaterial
	cursor    int
	loading   bool
	errText   string

	spinner spinner.Model
	width   int
	height  int
}

func NewCourseMaterialsPage(app *App, courseID int) *CourseMaterialsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &CourseMaterialsPage{app: app, courseID: courseID, spinner: sp, loading: true}
}

func (p *CourseMaterialsPage) Title() string    { return fmt.Sprintf("Course %d", p.courseID) }
func (p *CourseMaterialsPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *CourseMaterialsPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *CourseMaterialsPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		materials, err := p.app.client.StudentPortal().CourseMaterials(ctx, studentID, p.courseID)
		return courseMaterialsMsg{materials: materials, err: err}
	}
}

func (p *CourseMaterialsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case courseMaterialsMsg:
		p.loading = false
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

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
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
		case "q":
			return p, Navigate(RouteQuizPlayer, p.courseID)
		case "b":
			return p, Navigate(RouteStudentCourses, 0)
		}
	}
	return p, nil
}

func (p *CourseMaterialsPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading materials..."
	}

	var body string
	switch {
	case p.errText != "":
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.materials) == 0:
		body = s.Muted.Render("No materials in this course yet.")
	default:
		table := NewSimpleTable("", []string{"ID", "Title", "Type", "Uploaded"})
		for _, m := range p.materials {
			table.AddRow(strconv.Itoa(m.ID), truncate(m.Title, 40), m.FileType, m.UploadDate)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	return s.Title.Render("Study Materials") + "\n" + body + "\n" +
		s.Muted.Render("j/k move  q course quiz  b back  r reload")
}
