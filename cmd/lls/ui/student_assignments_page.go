package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// assignmentRow pairs an assignment with the student's submission, if any.
type assignmentRow struct {
	Assignment api.Assignment
	Submission *api.Submission
}

type studentAssignmentsMsg struct {
	rows []assignmentRow
	err  error
}

// StudentAssignmentsPage lists assignments across the student's courses
// with submission status. Enter opens the submit screen for pending ones.
type StudentAssignmentsPage struct {
	app *App

	rows    []assignmentRow
	cursor  int
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewStudentAssignmentsPage(app *App) *StudentAssignmentsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &StudentAssignmentsPage{app: app, spinner: sp, loading: true}
}

func (p *StudentAssignmentsPage) Title() string    { return "Assignments" }
func (p *StudentAssignmentsPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *StudentAssignmentsPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

// joinSubmissions matches each course assignment against the student's
// submissions.
func joinSubmissions(courses []api.Course, assignments []api.Assignment, submissions []api.Submission) []assignmentRow {
	enrolled := make(map[int]bool, len(courses))
	for _, c := range courses {
		enrolled[c.ID] = true
	}
	byAssignment := make(map[int]api.Submission, len(submissions))
	for _, s := range submissions {
		byAssignment[s.AssignmentID] = s
	}
	var rows []assignmentRow
	for _, a := range assignments {
		if !enrolled[a.CourseID] {
			continue
		}
		row := assignmentRow{Assignment: a}
		if sub, ok := byAssignment[a.ID]; ok {
			s := sub
			row.Submission = &s
		}
		rows = append(rows, row)
	}
	return rows
}

func (p *StudentAssignmentsPage) loadCmd() tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()

		var courses []api.Course
		var assignments []api.Assignment
		var submissions []api.Submission
		err := api.FetchAll(ctx,
			func(ctx context.Context) error {
				var err error
				courses, err = p.app.client.StudentPortal().Courses(ctx, studentID)
				return err
			},
			func(ctx context.Context) error {
				var err error
				assignments, err = p.app.client.Assignments().List(ctx, api.AssignmentFilter{})
				return err
			},
			func(ctx context.Context) error {
				var err error
				submissions, err = p.app.client.Submissions().ByStudent(ctx, studentID)
				return err
			},
		)
		if err != nil {
			return studentAssignmentsMsg{err: err}
		}
		return studentAssignmentsMsg{rows: joinSubmissions(courses, assignments, submissions)}
	}
}

func (p *StudentAssignmentsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case studentAssignmentsMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load assignments")
		}
		p.errText = ""
		p.rows = msg.rows
		if p.cursor >= len(p.rows) {
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
			if p.cursor < len(p.rows)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "enter":
			if p.cursor < len(p.rows) && p.rows[p.cursor].Submission == nil {
				return p, Navigate(RouteSubmit, p.rows[p.cursor].Assignment.ID)
			}
		}
	}
	return p, nil
}

func (p *StudentAssignmentsPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading assignments..."
	}

	var body string
	switch {
	case p.errText != "":
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.rows) == 0:
		body = s.Muted.Render("No assignments in your courses.")
	default:
		table := NewSimpleTable("", []string{"ID", "Title", "Due", "Status", "Marks"})
		for _, row := range p.rows {
			status := "pending"
			marks := ""
			if row.Submission != nil {
				status = row.Submission.Status
				if status == "" {
					status = "submitted"
				}
				if row.Submission.Status == "evaluated" {
					marks = fmt.Sprintf("%.1f/%.1f", row.Submission.MarksObtained, row.Assignment.MaxMarks)
				}
			}
			table.AddRow(strconv.Itoa(row.Assignment.ID), truncate(row.Assignment.Title, 32),
				row.Assignment.DueDate, status, marks)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	return s.Title.Render("Assignments") + "\n" + body + "\n" +
		s.Muted.Render("j/k move  enter submit pending  r reload")
}

type submitDoneMsg struct{ err error }

type submitAssignmentMsg struct {
	assignment *api.Assignment
	err        error
}

// SubmitPage lets the student answer one assignment with free text, a file
// path, or both.
type SubmitPage struct {
	app          *App
	assignmentID int

	assignment *api.Assignment
	textInput  textinput.Model
	fileInput  textinput.Model
	focus      int
	loading    bool
	busy       bool
	errText    string

	spinner spinner.Model
	width   int
	height  int
}

func NewSubmitPage(app *App, assignmentID int) *SubmitPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner

	text := textinput.New()
	text.Placeholder = "your answer"
	text.CharLimit = 2000
	text.Focus()

	file := textinput.New()
	file.Placeholder = "optional local file path"

	return &SubmitPage{app: app, assignmentID: assignmentID, spinner: sp,
		textInput: text, fileInput: file, loading: true}
}

func (p *SubmitPage) Title() string    { return fmt.Sprintf("Submit Assignment %d", p.assignmentID) }
func (p *SubmitPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *SubmitPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, textinput.Blink, p.loadCmd())
}

func (p *SubmitPage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		assignment, err := p.app.client.Assignments().Get(ctx, p.assignmentID)
		return submitAssignmentMsg{assignment: assignment, err: err}
	}
}

func (p *SubmitPage) submitCmd(text, filePath string) tea.Cmd {
	studentID := 0
	if prin := p.app.principal(); prin != nil {
		studentID = prin.ID
	}
	return func() tea.Msg {
		part, err := openUpload(filePath)
		if err != nil {
			return submitDoneMsg{err: err}
		}
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return submitDoneMsg{err: p.app.client.Submissions().Create(ctx, api.SubmissionUpload{
			AssignmentID:   p.assignmentID,
			StudentID:      studentID,
			SubmissionText: text,
			File:           part,
		})}
	}
}

func (p *SubmitPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case submitAssignmentMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load assignment")
		}
		p.errText = ""
		p.assignment = msg.assignment
		return p, nil

	case submitDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Submission failed")
		}
		return p, tea.Batch(
			ShowToast(ToastSuccess, "Assignment submitted"),
			Navigate(RouteStudentAssignments, 0),
		)

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			p.focus = 1 - p.focus
			if p.focus == 0 {
				p.textInput.Focus()
				p.fileInput.Blur()
			} else {
				p.fileInput.Focus()
				p.textInput.Blur()
			}
			return p, nil
		case "enter", "ctrl+s":
			text := strings.TrimSpace(p.textInput.Value())
			filePath := strings.TrimSpace(p.fileInput.Value())
			if text == "" && filePath == "" {
				p.errText = "Provide an answer or attach a file"
				return p, nil
			}
			p.errText = ""
			p.busy = true
			return p, p.submitCmd(text, filePath)
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.textInput, cmd = p.textInput.Update(msg)
	} else {
		p.fileInput, cmd = p.fileInput.Update(msg)
	}
	return p, cmd
}

func (p *SubmitPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading assignment..."
	}

	var sb strings.Builder
	if p.assignment != nil {
		sb.WriteString(s.Title.Render(p.assignment.Title))
		sb.WriteString("\n")
		if p.assignment.Description != "" {
			sb.WriteString(s.Body.Render(p.assignment.Description) + "\n")
		}
		sb.WriteString(s.Muted.Render(fmt.Sprintf("due %s · max %.0f marks", p.assignment.DueDate, p.assignment.MaxMarks)))
		sb.WriteString("\n\n")
	}

	sb.WriteString(s.Muted.Render("Answer") + "\n" + p.textInput.View() + "\n")
	sb.WriteString(s.Muted.Render("Attachment") + "\n" + p.fileInput.View() + "\n")

	if p.errText != "" {
		sb.WriteString("\n" + s.ErrorBox.Render(p.errText) + "\n")
	}
	if p.busy {
		sb.WriteString("\n" + s.Muted.Render("Submitting..."))
	} else {
		sb.WriteString("\n" + s.Muted.Render("tab switch field  enter submit  esc back"))
	}
	return sb.String()
}
