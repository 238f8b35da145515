package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type quizCoursesMsg struct {
	courses []api.Course
	err     error
}

// QuizListPage picks which course quiz to play.
type QuizListPage struct {
	app *App

	courses []api.Course
	cursor  int
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewQuizListPage(app *App) *QuizListPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &QuizListPage{app: app, spinner: sp, loading: true}
}

func (p *QuizListPage) Title() string    { return "Quizzes" }
func (p *QuizListPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *QuizListPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *QuizListPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		courses, err := p.app.client.StudentPortal().Courses(ctx, studentID)
		return quizCoursesMsg{courses: courses, err: err}
	}
}

func (p *QuizListPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case quizCoursesMsg:
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
				return p, Navigate(RouteQuizPlayer, p.courses[p.cursor].ID)
			}
		case "s":
			return p, Navigate(RouteQuizResults, 0)
		}
	}
	return p, nil
}

func (p *QuizListPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading courses..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if len(p.courses) == 0 {
		return s.Muted.Render("Enroll in a course to take its quiz.")
	}

	var out string
	for i, c := range p.courses {
		line := fmt.Sprintf("%s (%s)", c.CourseName, c.CourseCode)
		if i == p.cursor {
			line = s.NavItemActive.Render(line)
		} else {
			line = s.NavItem.Render(line)
		}
		out += line + "\n"
	}
	return s.Title.Render("Pick a quiz") + "\n" + out + "\n" +
		s.Muted.Render("j/k move  enter play  s scores  r reload")
}

type quizResultsMsg struct {
	results []api.QuizResult
	err     error
}

// QuizResultsPage shows per-course quiz tallies.
type QuizResultsPage struct {
	app *App

	results []api.QuizResult
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewQuizResultsPage(app *App) *QuizResultsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &QuizResultsPage{app: app, spinner: sp, loading: true}
}

func (p *QuizResultsPage) Title() string    { return "Quiz Results" }
func (p *QuizResultsPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *QuizResultsPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *QuizResultsPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		results, err := p.app.client.MCQs().StudentResults(ctx, studentID)
		return quizResultsMsg{results: results, err: err}
	}
}

func (p *QuizResultsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case quizResultsMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load quiz results")
		}
		p.errText = ""
		p.results = msg.results
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
		case "b":
			return p, Navigate(RouteQuizList, 0)
		}
	}
	return p, nil
}

func (p *QuizResultsPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading quiz results..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if len(p.results) == 0 {
		return s.Muted.Render("No quiz attempts yet.")
	}

	table := NewSimpleTable("", []string{"Course", "Attempted", "Correct", "Marks"})
	for _, res := range p.results {
		table.AddRow(res.CourseName,
			fmt.Sprintf("%d/%d", res.AttemptedCount, res.TotalQuestions),
			fmt.Sprintf("%d", res.CorrectCount),
			fmt.Sprintf("%.1f/%.1f", res.MarksEarned, res.TotalMarks))
	}
	return s.Title.Render("Quiz Results") + "\n" + table.View(s) + "\n" +
		s.Muted.Render("b back to quizzes  r reload")
}
