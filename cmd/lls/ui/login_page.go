package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

var loginRoles = []api.Role{api.RoleAdmin, api.RoleStaff, api.RoleStudent}

type loginDoneMsg struct {
	resp *api.LoginResponse
	err  error
}

// LoginPage is the public sign-in card: email, password and a role
// selector. A successful login writes the session before navigating, so
// the shell that mounts next reads the same state the guard does.
type LoginPage struct {
	app *App

	email    textinput.Model
	password textinput.Model
	roleIdx  int
	focus    int // 0 email, 1 password, 2 role
	busy     bool
	errText  string

	width  int
	height int
}

func NewLoginPage(app *App) *LoginPage {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return &LoginPage{app: app, email: email, password: password, roleIdx: 2}
}

func (p *LoginPage) Title() string    { return "Sign In" }
func (p *LoginPage) SetSize(w, h int) { p.width, p.height = w, h }
func (p *LoginPage) Init() tea.Cmd    { return textinput.Blink }

// SetCredentials fills the form programmatically, used by tests.
func (p *LoginPage) SetCredentials(email, password string, role api.Role) {
	p.email.SetValue(email)
	p.password.SetValue(password)
	for i, r := range loginRoles {
		if r == role {
			p.roleIdx = i
		}
	}
}

func (p *LoginPage) Role() api.Role { return loginRoles[p.roleIdx] }

func (p *LoginPage) submitCmd() tea.Cmd {
	req := api.LoginRequest{
		Email:    strings.TrimSpace(p.email.Value()),
		Password: p.password.Value(),
		Role:     p.Role(),
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		resp, err := p.app.client.Auth().Login(ctx, req)
		return loginDoneMsg{resp: resp, err: err}
	}
}

// Submit validates locally and fires the login request.
func (p *LoginPage) Submit() (Page, tea.Cmd) {
	if p.busy {
		return p, nil
	}
	email := strings.TrimSpace(p.email.Value())
	if email == "" || p.password.Value() == "" {
		p.errText = "Email and password are required"
		return p, nil
	}
	if !emailRx.MatchString(email) {
		p.errText = "Please enter a valid email address"
		return p, nil
	}
	p.errText = ""
	p.busy = true
	return p, p.submitCmd()
}

func (p *LoginPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Login failed")
		}
		user := msg.resp.User
		if !user.Role.Valid() {
			p.errText = "Login response carried an unknown role"
			return p, ShowToast(ToastError, "Login failed")
		}
		if err := p.app.session.Login(user, msg.resp.Token); err != nil {
			p.errText = err.Error()
			return p, ShowToast(ToastError, "Could not persist session")
		}
		return p, tea.Batch(
			ShowToast(ToastSuccess, "Welcome back, "+user.FullName),
			Navigate(DashboardRoute(user.Role), 0),
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			p.setFocus(p.focus + 1)
			return p, nil
		case "shift+tab", "up":
			p.setFocus(p.focus - 1)
			return p, nil
		case "left":
			if p.focus == 2 {
				p.roleIdx = (p.roleIdx + len(loginRoles) - 1) % len(loginRoles)
				return p, nil
			}
		case "right":
			if p.focus == 2 {
				p.roleIdx = (p.roleIdx + 1) % len(loginRoles)
				return p, nil
			}
		case "enter":
			if p.focus < 2 {
				p.setFocus(p.focus + 1)
				return p, nil
			}
			return p.Submit()
		case "ctrl+r":
			return p, Navigate(RouteRegister, 0)
		}
	}

	var cmd tea.Cmd
	switch p.focus {
	case 0:
		p.email, cmd = p.email.Update(msg)
	case 1:
		p.password, cmd = p.password.Update(msg)
	}
	return p, cmd
}

func (p *LoginPage) setFocus(i int) {
	if i < 0 {
		i = 2
	}
	if i > 2 {
		i = 0
	}
	p.email.Blur()
	p.password.Blur()
	p.focus = i
	switch i {
	case 0:
		p.email.Focus()
	case 1:
		p.password.Focus()
	}
}

func (p *LoginPage) View() string {
	s := p.app.styles
	var sb strings.Builder

	sb.WriteString(Logo(s))
	sb.WriteString("\n")
	sb.WriteString(s.Subtitle.Render("Language Learning School"))
	sb.WriteString("\n\n")

	sb.WriteString(s.Muted.Render("Email") + "\n" + p.email.View() + "\n")
	sb.WriteString(s.Muted.Render("Password") + "\n" + p.password.View() + "\n")

	roleLine := "Role: "
	for i, r := range loginRoles {
		label := string(r)
		if i == p.roleIdx {
			label = s.NavItemActive.Render(label)
		} else {
			label = s.NavItem.Render(label)
		}
		roleLine += label
	}
	if p.focus == 2 {
		roleLine += s.Muted.Render("  ←/→ change")
	}
	sb.WriteString(roleLine + "\n")

	if p.errText != "" {
		sb.WriteString("\n" + s.ErrorBox.Render(p.errText) + "\n")
	}
	if p.busy {
		sb.WriteString("\n" + s.Muted.Render("Signing in..."))
	} else {
		sb.WriteString("\n" + s.Muted.Render("enter sign in  ctrl+r register  ctrl+c quit"))
	}
	return sb.String()
}
