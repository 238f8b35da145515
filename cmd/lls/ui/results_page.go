package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type resultsLoadedMsg struct {
	results []api.Result
	err     error
}

// ResultsPage shows the student's per-course marks rollup: assignment
// marks, quiz marks and the combined grade.
type ResultsPage struct {
	app *App

	results []api.Result
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewResultsPage(app *App) *ResultsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &ResultsPage{app: app, spinner: sp, loading: true}
}

func (p *ResultsPage) Title() string    { return "Results" }
func (p *ResultsPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *ResultsPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *ResultsPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		results, err := p.app.client.StudentPortal().CourseResults(ctx, studentID)
		return resultsLoadedMsg{results: results, err: err}
	}
}

func (p *ResultsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load results")
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
		case "q":
			return p, Navigate(RouteQuizResults, 0)
		}
	}
	return p, nil
}

func (p *ResultsPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading results..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if len(p.results) == 0 {
		return s.Muted.Render("No results yet.")
	}

	table := NewSimpleTable("", []string{"Course", "Assignments", "Quizzes", "Total", "Grade"})
	for _, res := range p.results {
		table.AddRow(res.CourseName,
			fmt.Sprintf("%.1f", res.AssignmentMarks),
			fmt.Sprintf("%.1f", res.MCQMarks),
			fmt.Sprintf("%.1f", res.TotalMarks),
			res.Grade)
	}
	return s.Title.Render("Course Results") + "\n" + table.View(s) + "\n" +
		s.Muted.Render("q quiz results  r reload")
}
