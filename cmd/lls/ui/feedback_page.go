package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

type feedbackLoadedMsg struct {
	summary *api.FeedbackSummary
	err     error
}

// StaffFeedbackPage shows the feedback students left for the signed-in
// staff member, with the running average on top. Anonymous entries arrive
// already masked by the backend.
type StaffFeedbackPage struct {
	app *App

	summary *api.FeedbackSummary
	cursor  int
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewStaffFeedbackPage(app *App) *StaffFeedbackPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &StaffFeedbackPage{app: app, spinner: sp, loading: true}
}

func (p *StaffFeedbackPage) Title() string    { return "My Feedback" }
func (p *StaffFeedbackPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *StaffFeedbackPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

func (p *StaffFeedbackPage) loadCmd() tea.Cmd {
	staffID := 0
	if prin := p.app.principal(); prin != nil {
		staffID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		summary, err := p.app.client.Feedbacks().ByStaff(ctx, staffID)
		return feedbackLoadedMsg{summary: summary, err: err}
	}
}

func (p *StaffFeedbackPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load feedback")
		}
		p.errText = ""
		p.summary = msg.summary
		if p.summary != nil && p.cursor >= len(p.summary.Feedbacks) {
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
			if p.summary != nil && p.cursor < len(p.summary.Feedbacks)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		}
	}
	return p, nil
}

func renderStars(rating int) string {
	if rating < 1 || rating > 5 {
		return "-"
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func (p *StaffFeedbackPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading feedback..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if p.summary == nil || len(p.summary.Feedbacks) == 0 {
		return s.Title.Render(p.Title()) + "\n" + s.Muted.Render("No feedback yet.")
	}

	header := s.Card.Render(
		s.Bold.Render(fmt.Sprintf("%.2f average", p.summary.AverageRating)) + "\n" +
			s.Muted.Render(fmt.Sprintf("%d responses", p.summary.TotalCount)))

	table := NewSimpleTable("", []string{"From", "Course", "Rating", "Comment", "When"})
	for _, fb := range p.summary.Feedbacks {
		table.AddRow(fb.StudentName, strconv.Itoa(fb.CourseID), renderStars(fb.Rating),
			truncate(fb.FeedbackText, 40), fb.SubmittedAt)
	}
	table.Selected = p.cursor

	return s.Title.Render(p.Title()) + "\n" + header + "\n" + table.View(s) + "\n" +
		s.Muted.Render("j/k move  r reload")
}
