package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// renderStatCards lays out label/value pairs as a card row.
func renderStatCards(s Styles, stats [][2]string) string {
	cards := make([]string, 0, len(stats))
	for _, st := range stats {
		body := s.Muted.Render(st[0]) + "\n" + s.Title.Render(st[1])
		cards = append(cards, s.Card.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// --- admin ---

type adminDashboardMsg struct {
	staff   []api.StaffReport
	courses []api.CourseReport
	err     error
}

// AdminDashboardPage shows the school-wide staff workload and course
// reports. Both reports load as one join.
type AdminDashboardPage struct {
	app *App

	staff   []api.StaffReport
	courses []api.CourseReport
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewAdminDashboardPage(app *App) *AdminDashboardPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &AdminDashboardPage{app: app, spinner: sp, loading: true}
}

func (p *AdminDashboardPage) Title() string    { return "Dashboard" }
func (p *AdminDashboardPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *AdminDashboardPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *AdminDashboardPage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()

		var out adminDashboardMsg
		out.err = api.FetchAll(ctx,
			func(ctx context.Context) error {
				var err error
				out.staff, err = p.app.client.Reports().AdminStaffReport(ctx)
				return err
			},
			func(ctx context.Context) error {
				var err error
				out.courses, err = p.app.client.Reports().AdminCourseReport(ctx)
				return err
			},
		)
		return out
	}
}

func (p *AdminDashboardPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case adminDashboardMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load dashboard")
		}
		p.errText = ""
		p.staff = msg.staff
		p.courses = msg.courses
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		}
	}
	return p, nil
}

func (p *AdminDashboardPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading dashboard..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}

	var sb strings.Builder
	sb.WriteString(renderStatCards(s, [][2]string{
		{"Staff", strconv.Itoa(len(p.staff))},
		{"Courses", strconv.Itoa(len(p.courses))},
	}))
	sb.WriteString("\n\n")

	staffTable := NewSimpleTable("Staff Workload", []string{"Name", "Courses", "Materials", "Assignments", "To Grade"})
	for _, r := range p.staff {
		staffTable.AddRow(r.StaffName, strconv.Itoa(r.CourseCount), strconv.Itoa(r.MaterialCount),
			strconv.Itoa(r.AssignmentCount), strconv.Itoa(r.PendingGradeWork))
	}
	sb.WriteString(staffTable.View(s))
	sb.WriteString("\n")

	courseTable := NewSimpleTable("Courses", []string{"Course", "Students", "Materials", "Assignments"})
	for _, r := range p.courses {
		courseTable.AddRow(r.CourseName, strconv.Itoa(r.StudentCount), strconv.Itoa(r.MaterialCount),
			strconv.Itoa(r.AssignmentCount))
	}
	sb.WriteString(courseTable.View(s))
	sb.WriteString("\n" + s.Muted.Render("r reload"))
	return sb.String()
}

// --- staff ---

type staffDashboardMsg struct {
	report *api.StaffReport
	err    error
}

// StaffDashboardPage shows the signed-in staff member's workload summary.
type StaffDashboardPage struct {
	app *App

	report  *api.StaffReport
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewStaffDashboardPage(app *App) *StaffDashboardPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &StaffDashboardPage{app: app, spinner: sp, loading: true}
}

func (p *StaffDashboardPage) Title() string    { return "Dashboard" }
func (p *StaffDashboardPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *StaffDashboardPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *StaffDashboardPage) loadCmd() tea.Cmd {
	staffID := 0
	if prin := p.app.principal(); prin != nil {
		staffID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		report, err := p.app.client.Reports().StaffReport(ctx, staffID)
		return staffDashboardMsg{report: report, err: err}
	}
}

func (p *StaffDashboardPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case staffDashboardMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load dashboard")
		}
		p.errText = ""
		p.report = msg.report
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "c":
			return p, Navigate(RouteMyCourses, 0)
		case "a":
			return p, Navigate(RouteAssignments, 0)
		}
	}
	return p, nil
}

func (p *StaffDashboardPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading dashboard..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}

	var sb strings.Builder
	if prin := p.app.principal(); prin != nil {
		sb.WriteString(s.Subtitle.Render("Welcome back, " + prin.FullName))
		sb.WriteString("\n\n")
	}
	if p.report != nil {
		sb.WriteString(renderStatCards(s, [][2]string{
			{"My Courses", strconv.Itoa(p.report.CourseCount)},
			{"Materials", strconv.Itoa(p.report.MaterialCount)},
			{"Assignments", strconv.Itoa(p.report.AssignmentCount)},
			{"To Grade", strconv.Itoa(p.report.PendingGradeWork)},
		}))
	}
	sb.WriteString("\n\n" + s.Muted.Render("c my courses  a assignments  r reload"))
	return sb.String()
}

// --- student ---

type studentDashboardMsg struct {
	stats *api.StudentDashboard
	err   error
}

// StudentDashboardPage shows enrollment, pending work and grade average.
type StudentDashboardPage struct {
	app *App

	stats   *api.StudentDashboard
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewStudentDashboardPage(app *App) *StudentDashboardPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &StudentDashboardPage{app: app, spinner: sp, loading: true}
}

func (p *StudentDashboardPage) Title() string    { return "Dashboard" }
func (p *StudentDashboardPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *StudentDashboardPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *StudentDashboardPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		stats, err := p.app.client.StudentPortal().Dashboard(ctx, studentID)
		return studentDashboardMsg{stats: stats, err: err}
	}
}

func (p *StudentDashboardPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case studentDashboardMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load dashboard")
		}
		p.errText = ""
		p.stats = msg.stats
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "c":
			return p, Navigate(RouteStudentCourses, 0)
		case "q":
			return p, Navigate(RouteQuizList, 0)
		}
	}
	return p, nil
}

func (p *StudentDashboardPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading dashboard..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}

	var sb strings.Builder
	if prin := p.app.principal(); prin != nil {
		sb.WriteString(s.Subtitle.Render("Welcome back, " + prin.FullName))
		sb.WriteString("\n\n")
	}
	if p.stats != nil {
		sb.WriteString(renderStatCards(s, [][2]string{
			{"Courses", strconv.Itoa(p.stats.EnrolledCourses)},
			{"Pending Work", strconv.Itoa(p.stats.PendingAssignment)},
			{"Quizzes Done", strconv.Itoa(p.stats.CompletedQuizzes)},
			{"Avg Grade", fmt.Sprintf("%.1f", p.stats.AverageGrade)},
		}))
	}
	sb.WriteString("\n\n" + s.Muted.Render("c my courses  q quizzes  r reload"))
	return sb.String()
}
