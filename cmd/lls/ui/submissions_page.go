package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type submissionsLoadedMsg struct {
	submissions []api.Submission
	err         error
}

type evaluateDoneMsg struct{ err error }

// SubmissionsPage lists a single assignment's submissions and grades them
// inline: "e" opens the marks/feedback editor for the selected row.
type SubmissionsPage struct {
	app          *App
	assignmentID int

	submissions []api.Submission
	cursor      int
	loading     bool
	errText     string

	grading    bool
	gradeID    int // submission targeted when the editor opened
	marksInput textinput.Model
	fbInput    textinput.Model
	gradeFocus int // 0 marks, 1 feedback
	busy       bool

	spinner spinner.Model
	width   int
	height  int
}

func NewSubmissionsPage(app *App, assignmentID int) *SubmissionsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner

	marks := textinput.New()
	marks.Placeholder = "marks"
	marks.CharLimit = 8

	fb := textinput.New()
	fb.Placeholder = "feedback"

	return &SubmissionsPage{
		app: app, assignmentID: assignmentID,
		spinner: sp, marksInput: marks, fbInput: fb, loading: true,
	}
}

func (p *SubmissionsPage) Title() string {
	return fmt.Sprintf("Submissions · Assignment %d", p.assignmentID)
}
func (p *SubmissionsPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *SubmissionsPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *SubmissionsPage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		submissions, err := p.app.client.Submissions().ByAssignment(ctx, p.assignmentID)
		return submissionsLoadedMsg{submissions: submissions, err: err}
	}
}

func (p *SubmissionsPage) evaluateCmd(submissionID int, marks float64, feedback string) tea.Cmd {
	staffID := 0
	if prin := p.app.principal(); prin != nil {
		staffID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		err := p.app.client.Submissions().Evaluate(ctx, submissionID, api.Evaluation{
			StaffID:       staffID,
			MarksObtained: marks,
			Feedback:      feedback,
		})
		return evaluateDoneMsg{err: err}
	}
}

func (p *SubmissionsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case submissionsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load submissions")
		}
		p.errText = ""
		p.submissions = msg.submissions
		if p.cursor >= len(p.submissions) {
			p.cursor = 0
		}
		return p, nil

	case evaluateDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Evaluation failed")
		}
		p.grading = false
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Submission graded"), p.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.grading {
			return p.updateGrading(msg)
		}
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.submissions)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "e", "enter":
			if p.cursor < len(p.submissions) {
				p.openGrading()
				return p, textinput.Blink
			}
		case "b":
			return p, Navigate(RouteAssignments, 0)
		}
	}
	return p, nil
}

func (p *SubmissionsPage) openGrading() {
	sub := p.submissions[p.cursor]
	p.grading = true
	p.gradeID = sub.ID
	p.gradeFocus = 0
	p.errText = ""
	p.marksInput.SetValue("")
	if sub.MarksObtained > 0 {
		p.marksInput.SetValue(strconv.FormatFloat(sub.MarksObtained, 'f', -1, 64))
	}
	p.fbInput.SetValue(sub.Feedback)
	p.marksInput.Focus()
	p.fbInput.Blur()
}

func (p *SubmissionsPage) updateGrading(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.busy {
		return p, nil
	}
	switch msg.String() {
	case "esc":
		p.grading = false
		return p, nil
	case "tab", "down", "up", "shift+tab":
		p.gradeFocus = 1 - p.gradeFocus
		if p.gradeFocus == 0 {
			p.marksInput.Focus()
			p.fbInput.Blur()
		} else {
			p.fbInput.Focus()
			p.marksInput.Blur()
		}
		return p, nil
	case "enter":
		marks, err := strconv.ParseFloat(strings.TrimSpace(p.marksInput.Value()), 64)
		if err != nil || marks < 0 {
			p.errText = "Marks must be a non-negative number"
			return p, nil
		}
		p.errText = ""
		p.busy = true
		return p, p.evaluateCmd(p.gradeID, marks, strings.TrimSpace(p.fbInput.Value()))
	}

	var cmd tea.Cmd
	if p.gradeFocus == 0 {
		p.marksInput, cmd = p.marksInput.Update(msg)
	} else {
		p.fbInput, cmd = p.fbInput.Update(msg)
	}
	return p, cmd
}

func (p *SubmissionsPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading submissions..."
	}

	var body string
	switch {
	case p.errText != "" && !p.grading:
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.submissions) == 0:
		body = s.Muted.Render("No submissions yet.")
	default:
		table := NewSimpleTable("", []string{"ID", "Student", "Submitted", "Status", "Marks"})
		for _, sub := range p.submissions {
			marks := ""
			if sub.Status == "evaluated" {
				marks = strconv.FormatFloat(sub.MarksObtained, 'f', -1, 64)
			}
			table.AddRow(strconv.Itoa(sub.ID), strconv.Itoa(sub.StudentID), sub.SubmittedAt, sub.Status, marks)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	out := s.Title.Render(p.Title()) + "\n" + body + "\n" +
		s.Muted.Render("j/k move  e grade  b back  r reload")

	if p.grading {
		var mb strings.Builder
		mb.WriteString(s.Bold.Render(fmt.Sprintf("Grade submission %d", p.gradeID)))
		mb.WriteString("\n\n")
		mb.WriteString(s.Muted.Render("Marks") + "\n" + p.marksInput.View() + "\n")
		mb.WriteString(s.Muted.Render("Feedback") + "\n" + p.fbInput.View() + "\n")
		if p.errText != "" {
			mb.WriteString("\n" + s.Error.Render(p.errText))
		}
		if p.busy {
			mb.WriteString("\n" + s.Muted.Render("Saving..."))
		} else {
			mb.WriteString("\n" + s.Muted.Render("enter save  tab switch  esc cancel"))
		}
		out += "\n" + s.ModalBox.Render(mb.String())
	}
	return out
}
