package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

var validate = validator.New()

// registerAccount is step one of the wizard; validation gates the step
// transition, so nothing invalid ever reaches the network.
type registerAccount struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

func (r registerAccount) check() string {
	err := validate.Struct(r)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Please fill in all fields"
	}
	switch first := errs[0]; {
	case first.Tag() == "required":
		return "All fields are required"
	case first.Field() == "Email":
		return "Please enter a valid email address"
	case first.Field() == "Password":
		return "Password must be at least 6 characters"
	case first.Field() == "Confirm":
		return "Passwords do not match"
	}
	return "Please check your details"
}

type registerOptionsMsg struct {
	programs  []api.Program
	semesters []api.Semester
	courses   []api.Course
	err       error
}

type registerDoneMsg struct{ err error }

const (
	registerStepAccount = iota
	registerStepProgram
	registerStepCourses
)

// RegisterPage is the student self-registration wizard: account details,
// program and semester, then course selection. The option lists load as
// one join; a failure of any leg fails the whole step.
type RegisterPage struct {
	app *App

	step    int
	busy    bool
	loading bool
	errText string

	inputs []textinput.Model // full name, email, password, confirm
	focus  int

	programs  []api.Program
	semesters []api.Semester
	courses   []api.Course

	programIdx  int
	semesterIdx int
	pickingSem  bool // step two focus: false = program column, true = semester

	courseCursor int
	selected     map[int]bool // course id -> chosen

	width  int
	height int
}

func NewRegisterPage(app *App) *RegisterPage {
	labels := []struct{ placeholder string }{
		{"Full name"}, {"you@example.com"}, {"password"}, {"repeat password"},
	}
	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		if i >= 2 {
			in.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return &RegisterPage{app: app, inputs: inputs, selected: map[int]bool{}}
}

func (p *RegisterPage) Title() string    { return "Register" }
func (p *RegisterPage) SetSize(w, h int) { p.width, p.height = w, h }
func (p *RegisterPage) Init() tea.Cmd    { return textinput.Blink }
func (p *RegisterPage) Step() int        { return p.step }
func (p *RegisterPage) Error() string    { return p.errText }

// SetAccount fills step one programmatically, used by tests.
func (p *RegisterPage) SetAccount(fullName, email, password, confirm string) {
	p.inputs[0].SetValue(fullName)
	p.inputs[1].SetValue(email)
	p.inputs[2].SetValue(password)
	p.inputs[3].SetValue(confirm)
}

func (p *RegisterPage) account() registerAccount {
	return registerAccount{
		FullName: strings.TrimSpace(p.inputs[0].Value()),
		Email:    strings.TrimSpace(p.inputs[1].Value()),
		Password: p.inputs[2].Value(),
		Confirm:  p.inputs[3].Value(),
	}
}

func (p *RegisterPage) loadOptionsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()

		var out registerOptionsMsg
		err := api.FetchAll(ctx,
			func(ctx context.Context) error {
				var err error
				out.programs, err = p.app.client.Programs().List(ctx)
				return err
			},
			func(ctx context.Context) error {
				var err error
				out.semesters, err = p.app.client.Semesters().List(ctx)
				return err
			},
			func(ctx context.Context) error {
				var err error
				out.courses, err = p.app.client.Courses().List(ctx)
				return err
			},
		)
		out.err = err
		return out
	}
}

// AdvanceFromAccount validates step one and, when clean, starts loading the
// program options. Validation failures keep the wizard on step one.
func (p *RegisterPage) AdvanceFromAccount() (Page, tea.Cmd) {
	if msg := p.account().check(); msg != "" {
		p.errText = msg
		return p, nil
	}
	p.errText = ""
	p.loading = true
	return p, p.loadOptionsCmd()
}

// filteredCourses returns the courses matching the chosen program and
// semester.
func (p *RegisterPage) filteredCourses() []api.Course {
	if p.programIdx >= len(p.programs) || p.semesterIdx >= len(p.semesters) {
		return nil
	}
	programID := p.programs[p.programIdx].ID
	semesterID := p.semesters[p.semesterIdx].ID
	var out []api.Course
	for _, c := range p.courses {
		if c.ProgramID == programID && c.SemesterID == semesterID {
			out = append(out, c)
		}
	}
	return out
}

func (p *RegisterPage) submitCmd() tea.Cmd {
	acct := p.account()
	req := api.RegisterRequest{
		FullName:   acct.FullName,
		Email:      acct.Email,
		Password:   acct.Password,
		ProgramID:  p.programs[p.programIdx].ID,
		SemesterID: p.semesters[p.semesterIdx].ID,
	}
	for id, on := range p.selected {
		if on {
			req.CourseIDs = append(req.CourseIDs, id)
		}
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return registerDoneMsg{err: p.app.client.Auth().Register(ctx, req)}
	}
}

func (p *RegisterPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case registerOptionsMsg:
		p.loading = false
		if msg.err != nil {
			// All-or-nothing: no partial dropdowns, stay on step one.
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Could not load registration options")
		}
		p.programs = msg.programs
		p.semesters = msg.semesters
		p.courses = msg.courses
		if len(p.programs) == 0 || len(p.semesters) == 0 {
			p.errText = "Registration is not open: no programs available"
			return p, nil
		}
		p.errText = ""
		p.step = registerStepProgram
		return p, nil

	case registerDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Registration failed")
		}
		return p, tea.Batch(
			ShowToast(ToastSuccess, "Account created, please sign in"),
			Navigate(RouteLogin, 0),
		)

	case tea.KeyMsg:
		switch p.step {
		case registerStepAccount:
			return p.updateAccount(msg)
		case registerStepProgram:
			return p.updateProgram(msg)
		case registerStepCourses:
			return p.updateCourses(msg)
		}
	}
	return p, nil
}

func (p *RegisterPage) updateAccount(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.loading {
		return p, nil
	}
	switch msg.String() {
	case "tab", "down":
		p.setFocus(p.focus + 1)
		return p, nil
	case "shift+tab", "up":
		p.setFocus(p.focus - 1)
		return p, nil
	case "enter":
		if p.focus < len(p.inputs)-1 {
			p.setFocus(p.focus + 1)
			return p, nil
		}
		return p.AdvanceFromAccount()
	case "ctrl+b":
		return p, Navigate(RouteLogin, 0)
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *RegisterPage) updateProgram(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		p.pickingSem = !p.pickingSem
	case "up", "k":
		if p.pickingSem {
			if p.semesterIdx > 0 {
				p.semesterIdx--
			}
		} else if p.programIdx > 0 {
			p.programIdx--
		}
	case "down", "j":
		if p.pickingSem {
			if p.semesterIdx < len(p.semesters)-1 {
				p.semesterIdx++
			}
		} else if p.programIdx < len(p.programs)-1 {
			p.programIdx++
		}
	case "enter":
		p.step = registerStepCourses
		p.courseCursor = 0
	case "ctrl+b":
		p.step = registerStepAccount
	}
	return p, nil
}

func (p *RegisterPage) updateCourses(msg tea.KeyMsg) (Page, tea.Cmd) {
	courses := p.filteredCourses()
	switch msg.String() {
	case "up", "k":
		if p.courseCursor > 0 {
			p.courseCursor--
		}
	case "down", "j":
		if p.courseCursor < len(courses)-1 {
			p.courseCursor++
		}
	case " ":
		if p.courseCursor < len(courses) {
			id := courses[p.courseCursor].ID
			p.selected[id] = !p.selected[id]
		}
	case "enter":
		if p.busy {
			return p, nil
		}
		p.errText = ""
		p.busy = true
		return p, p.submitCmd()
	case "ctrl+b":
		p.step = registerStepProgram
	}
	return p, nil
}

func (p *RegisterPage) setFocus(i int) {
	if i < 0 {
		i = len(p.inputs) - 1
	}
	if i >= len(p.inputs) {
		i = 0
	}
	p.inputs[p.focus].Blur()
	p.focus = i
	p.inputs[p.focus].Focus()
}

func (p *RegisterPage) View() string {
	s := p.app.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Student Registration"))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render(fmt.Sprintf("Step %d of 3", p.step+1)))
	sb.WriteString("\n\n")

	switch p.step {
	case registerStepAccount:
		labels := []string{"Full name", "Email", "Password", "Confirm password"}
		for i, label := range labels {
			rendered := s.Muted.Render(label)
			if i == p.focus {
				rendered = s.Bold.Render(label)
			}
			sb.WriteString(rendered + "\n" + p.inputs[i].View() + "\n")
		}
		if p.loading {
			sb.WriteString("\n" + s.Muted.Render("Loading programs..."))
		} else {
			sb.WriteString("\n" + s.Muted.Render("enter next  ctrl+b back to sign in"))
		}

	case registerStepProgram:
		sb.WriteString(s.Bold.Render("Program") + "\n")
		for i, prog := range p.programs {
			line := prog.ProgramName
			if i == p.programIdx {
				if !p.pickingSem {
					line = s.NavItemActive.Render(line)
				} else {
					line = s.Bold.Render(line)
				}
			} else {
				line = s.NavItem.Render(line)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n" + s.Bold.Render("Semester") + "\n")
		for i, sem := range p.semesters {
			line := sem.SemesterName
			if i == p.semesterIdx {
				if p.pickingSem {
					line = s.NavItemActive.Render(line)
				} else {
					line = s.Bold.Render(line)
				}
			} else {
				line = s.NavItem.Render(line)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n" + s.Muted.Render("tab switch column  j/k move  enter next  ctrl+b back"))

	case registerStepCourses:
		courses := p.filteredCourses()
		if len(courses) == 0 {
			sb.WriteString(s.Muted.Render("No courses for this program and semester yet."))
			sb.WriteString("\n")
		}
		for i, c := range courses {
			mark := "[ ]"
			if p.selected[c.ID] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s (%s)", mark, c.CourseName, c.CourseCode)
			if i == p.courseCursor {
				line = s.NavItemActive.Render(line)
			} else {
				line = s.NavItem.Render(line)
			}
			sb.WriteString(line + "\n")
		}
		if p.busy {
			sb.WriteString("\n" + s.Muted.Render("Creating account..."))
		} else {
			sb.WriteString("\n" + s.Muted.Render("space toggle  enter create account  ctrl+b back"))
		}
	}

	if p.errText != "" {
		sb.WriteString("\n" + s.ErrorBox.Render(p.errText))
	}
	return sb.String()
}
