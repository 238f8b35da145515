package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormField declares one input on a form page.
type FormField struct {
	Name        string
	Label       string
	Placeholder string
	Secret      bool
	Initial     string
}

// FormConfig declares a create/edit screen. Validate runs locally before
// Submit; a non-empty return blocks the request and is shown inline.
type FormConfig struct {
	PageTitle   string
	Fields      []FormField
	Validate    func(values map[string]string) string
	Submit      func(ctx context.Context, values map[string]string) error
	SuccessText string
	// On success the page navigates here.
	SuccessRoute Route
	SuccessArg   int
}

type formDoneMsg struct{ err error }

// FormPage is the generic form controller: a flat field map, a submitting
// flag, inline error text, navigation to the list on success.
type FormPage struct {
	app *App
	cfg FormConfig

	inputs     []textinput.Model
	focus      int
	submitting bool
	errText    string

	width  int
	height int
}

// NewFormPage builds a form page from its declaration.
func NewFormPage(app *App, cfg FormConfig) *FormPage {
	inputs := make([]textinput.Model, len(cfg.Fields))
	for i, f := range cfg.Fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.SetValue(f.Initial)
		in.CharLimit = 200
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return &FormPage{app: app, cfg: cfg, inputs: inputs}
}

func (p *FormPage) Title() string    { return p.cfg.PageTitle }
func (p *FormPage) SetSize(w, h int) { p.width, p.height = w, h }
func (p *FormPage) Init() tea.Cmd    { return textinput.Blink }
func (p *FormPage) Error() string    { return p.errText }
func (p *FormPage) Submitting() bool { return p.submitting }

// Values snapshots the current field map.
func (p *FormPage) Values() map[string]string {
	vals := make(map[string]string, len(p.inputs))
	for i, f := range p.cfg.Fields {
		vals[f.Name] = strings.TrimSpace(p.inputs[i].Value())
	}
	return vals
}

// SetValue programmatically fills a field, used by tests and edit mode.
func (p *FormPage) SetValue(name, value string) {
	for i, f := range p.cfg.Fields {
		if f.Name == name {
			p.inputs[i].SetValue(value)
			return
		}
	}
}

func (p *FormPage) submitCmd(values map[string]string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		return formDoneMsg{err: p.cfg.Submit(ctx, values)}
	}
}

// Submit validates and, when clean, fires the facade call. Validation
// failures never reach the network.
func (p *FormPage) Submit() (Page, tea.Cmd) {
	if p.submitting {
		return p, nil
	}
	values := p.Values()
	if p.cfg.Validate != nil {
		if msg := p.cfg.Validate(values); msg != "" {
			p.errText = msg
			return p, nil
		}
	}
	p.errText = ""
	p.submitting = true
	return p, p.submitCmd(values)
}

func (p *FormPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case formDoneMsg:
		p.submitting = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, nil
		}
		text := p.cfg.SuccessText
		if text == "" {
			text = "Saved"
		}
		return p, tea.Batch(ShowToast(ToastSuccess, text), Navigate(p.cfg.SuccessRoute, p.cfg.SuccessArg))

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			p.setFocus(p.focus + 1)
			return p, nil
		case "shift+tab", "up":
			p.setFocus(p.focus - 1)
			return p, nil
		case "enter":
			if p.focus == len(p.inputs)-1 {
				return p.Submit()
			}
			p.setFocus(p.focus + 1)
			return p, nil
		case "ctrl+s":
			return p.Submit()
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *FormPage) setFocus(i int) {
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

func (p *FormPage) View() string {
	var sb strings.Builder
	sb.WriteString(p.app.styles.Title.Render(p.cfg.PageTitle))
	sb.WriteString("\n")

	for i, f := range p.cfg.Fields {
		label := p.app.styles.Muted.Render(f.Label)
		if i == p.focus {
			label = p.app.styles.Bold.Render(f.Label)
		}
		sb.WriteString(label + "\n" + p.inputs[i].View() + "\n")
	}

	if p.errText != "" {
		sb.WriteString("\n" + p.app.styles.ErrorBox.Render(p.errText) + "\n")
	}
	if p.submitting {
		sb.WriteString("\n" + p.app.styles.Muted.Render("Submitting..."))
	} else {
		sb.WriteString("\n" + p.app.styles.Muted.Render("tab next field  enter/ctrl+s submit  esc back"))
	}
	return sb.String()
}
