package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type examRosterMsg struct {
	students []api.ExamStudent
	err      error
}

type examSavedMsg struct{ err error }
type examDeletedMsg struct{ err error }

// ExamsPage is the staff CCA marks manager for one course: the enrolled
// roster with each student's CCA1/CCA2 marks, an inline editor to enter
// marks and answer-paper paths, and delete with confirmation.
type ExamsPage struct {
	app      *App
	courseID int

	students []api.ExamStudent
	cursor   int
	loading  bool
	errText  string

	editing     bool
	editStudent api.ExamStudent // captured when the editor opened
	inputs      []textinput.Model
	focus       int
	busy        bool

	confirming bool
	confirmID  int // exam record targeted for deletion

	spinner spinner.Model
	width   int
	height  int
}

func NewExamsPage(app *App, courseID int) *ExamsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner

	labels := []string{"CCA1 marks", "CCA2 marks", "CCA1 answer paper path", "CCA2 answer paper path"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		inputs[i] = in
	}

	return &ExamsPage{app: app, courseID: courseID, spinner: sp, inputs: inputs, loading: true}
}

func (p *ExamsPage) Title() string    { return fmt.Sprintf("Course %d Exams", p.courseID) }
func (p *ExamsPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *ExamsPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *ExamsPage) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		students, err := p.app.client.Exams().StudentsForCourse(ctx, p.courseID)
		return examRosterMsg{students: students, err: err}
	}
}

func (p *ExamsPage) saveCmd(u api.ExamUpload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return examSavedMsg{err: p.app.client.Exams().Save(ctx, u)}
	}
}

func (p *ExamsPage) deleteCmd(examID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return examDeletedMsg{err: p.app.client.Exams().Delete(ctx, examID)}
	}
}

func (p *ExamsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case examRosterMsg:
		p.loading = false
		p.confirming = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load the roster")
		}
		p.errText = ""
		p.students = msg.students
		if p.cursor >= len(p.students) {
			p.cursor = 0
		}
		return p, nil

	case examSavedMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Saving exam marks failed")
		}
		p.editing = false
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Exam marks saved"), p.loadCmd())

	case examDeletedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Delete failed")
		}
		p.loading = true
		return p, tea.Batch(ShowToast(ToastSuccess, "Exam record deleted"), p.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.editing {
			return p.updateEditor(msg)
		}
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
			if p.cursor < len(p.students)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "e", "enter":
			if p.cursor < len(p.students) {
				p.openEditor()
				return p, textinput.Blink
			}
		case "d", "delete":
			if p.cursor < len(p.students) && p.students[p.cursor].Exam != nil {
				p.confirming = true
				p.confirmID = p.students[p.cursor].Exam.ID
			}
		case "b":
			return p, Navigate(RouteMyCourses, 0)
		}
	}
	return p, nil
}

func (p *ExamsPage) openEditor() {
	st := p.students[p.cursor]
	p.editing = true
	p.editStudent = st
	p.focus = 0
	p.errText = ""
	for i := range p.inputs {
		p.inputs[i].SetValue("")
		p.inputs[i].Blur()
	}
	if st.Exam != nil {
		if st.Exam.CCA1Marks != nil {
			p.inputs[0].SetValue(strconv.FormatFloat(*st.Exam.CCA1Marks, 'f', -1, 64))
		}
		if st.Exam.CCA2Marks != nil {
			p.inputs[1].SetValue(strconv.FormatFloat(*st.Exam.CCA2Marks, 'f', -1, 64))
		}
	}
	p.inputs[0].Focus()
}

// parseMarks accepts an empty string (leave unchanged) or a non-negative
// number.
func parseMarks(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", true
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		return "", false
	}
	return v, true
}

func (p *ExamsPage) updateEditor(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.busy {
		return p, nil
	}
	switch msg.String() {
	case "esc":
		p.editing = false
		p.errText = ""
		return p, nil
	case "tab", "down":
		p.setFocus((p.focus + 1) % len(p.inputs))
		return p, nil
	case "shift+tab", "up":
		p.setFocus((p.focus + len(p.inputs) - 1) % len(p.inputs))
		return p, nil
	case "enter":
		cca1, ok1 := parseMarks(p.inputs[0].Value())
		cca2, ok2 := parseMarks(p.inputs[1].Value())
		if !ok1 || !ok2 {
			p.errText = "Marks must be non-negative numbers"
			return p, nil
		}
		cca1File, err := openUpload(strings.TrimSpace(p.inputs[2].Value()))
		if err != nil {
			p.errText = err.Error()
			return p, nil
		}
		cca2File, err := openUpload(strings.TrimSpace(p.inputs[3].Value()))
		if err != nil {
			p.errText = err.Error()
			return p, nil
		}
		if cca1 == "" && cca2 == "" && cca1File == nil && cca2File == nil {
			p.errText = "Enter marks or an answer paper for at least one assessment"
			return p, nil
		}
		if cca1File != nil {
			cca1File.Field = "cca1_file"
		}
		if cca2File != nil {
			cca2File.Field = "cca2_file"
		}
		staffID := 0
		if prin := p.app.principal(); prin != nil {
			staffID = prin.ID
		}
		p.errText = ""
		p.busy = true
		return p, p.saveCmd(api.ExamUpload{
			StudentID: p.editStudent.ID,
			CourseID:  p.courseID,
			StaffID:   staffID,
			CCA1Marks: cca1,
			CCA2Marks: cca2,
			CCA1File:  cca1File,
			CCA2File:  cca2File,
		})
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *ExamsPage) setFocus(i int) {
	p.inputs[p.focus].Blur()
	p.focus = i
	p.inputs[p.focus].Focus()
}

func formatMarks(m *float64) string {
	if m == nil {
		return "-"
	}
	return strconv.FormatFloat(*m, 'f', -1, 64)
}

func (p *ExamsPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading roster..."
	}

	var body string
	switch {
	case p.errText != "" && !p.editing:
		body = s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	case len(p.students) == 0:
		body = s.Muted.Render("No students enrolled in this course yet.")
	default:
		table := NewSimpleTable("", []string{"Code", "Name", "CCA1", "CCA2", "Papers"})
		for _, st := range p.students {
			cca1, cca2, papers := "-", "-", ""
			if st.Exam != nil {
				cca1 = formatMarks(st.Exam.CCA1Marks)
				cca2 = formatMarks(st.Exam.CCA2Marks)
				if st.Exam.CCA1FilePath != "" || st.Exam.CCA2FilePath != "" {
					papers = "✓"
				}
			}
			table.AddRow(st.StudentCode, st.FullName, cca1, cca2, papers)
		}
		table.Selected = p.cursor
		body = table.View(s)
	}

	out := s.Title.Render(p.Title()) + "\n" + body + "\n" +
		s.Muted.Render("j/k move  e manage  d delete record  b back  r reload")

	if p.editing {
		var mb strings.Builder
		mb.WriteString(s.Bold.Render("Manage exam · " + p.editStudent.FullName))
		mb.WriteString("\n" + s.Muted.Render(p.editStudent.StudentCode) + "\n\n")
		labels := []string{"CCA1 marks", "CCA2 marks", "CCA1 paper", "CCA2 paper"}
		for i, in := range p.inputs {
			mb.WriteString(s.Muted.Render(labels[i]) + "\n" + in.View() + "\n")
		}
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

	if p.confirming {
		modal := s.ModalBox.Render("Delete this exam record?\n\n[y] yes   [n] cancel")
		out += "\n" + lipgloss.Place(p.width, 5, lipgloss.Center, lipgloss.Center, modal)
	}
	return out
}
