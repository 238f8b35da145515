package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// courseCard is an allocation joined with its course record.
type courseCard struct {
	Allocation api.StaffCourse
	Course     api.Course
}

type myCoursesMsg struct {
	cards []courseCard
	err   error
}

// MyCoursesPage lists the staff member's allocated courses as cards.
// Opening a card goes to that course's material manager.
type MyCoursesPage struct {
	app *App

	cards   []courseCard
	cursor  int
	loading bool
	errText string

	spinner spinner.Model
	width   int
	height  int
}

func NewMyCoursesPage(app *App) *MyCoursesPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &MyCoursesPage{app: app, spinner: sp, loading: true}
}

func (p *MyCoursesPage) Title() string    { return "My Courses" }
func (p *MyCoursesPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *MyCoursesPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

// Cards exposes the joined rows, used by tests.
func (p *MyCoursesPage) Cards() []courseCard { return p.cards }

// joinCourses matches each allocation to its course record. Allocations
// pointing at a deleted course are dropped rather than rendered half-empty.
func joinCourses(allocations []api.StaffCourse, courses []api.Course) []courseCard {
	byID := make(map[int]api.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	var cards []courseCard
	for _, al := range allocations {
		course, ok := byID[al.CourseID]
		if !ok {
			continue
		}
		cards = append(cards, courseCard{Allocation: al, Course: course})
	}
	return cards
}

func (p *MyCoursesPage) loadCmd() tea.Cmd {
	staffID := 0
	if prin := p.app.principal(); prin != nil {
		staffID = prin.ID
	}
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()

		var allocations []api.StaffCourse
		var courses []api.Course
		err := api.FetchAll(ctx,
			func(ctx context.Context) error {
				var err error
				allocations, err = p.app.client.StaffCourses().ByStaff(ctx, staffID)
				return err
			},
			func(ctx context.Context) error {
				var err error
				courses, err = p.app.client.Courses().List(ctx)
				return err
			},
		)
		if err != nil {
			return myCoursesMsg{err: err}
		}
		return myCoursesMsg{cards: joinCourses(allocations, courses)}
	}
}

func (p *MyCoursesPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case myCoursesMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load courses")
		}
		p.errText = ""
		p.cards = msg.cards
		if p.cursor >= len(p.cards) {
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
			if p.cursor < len(p.cards)-1 {
				p.cursor++
			}
		case "r":
			p.loading = true
			p.errText = ""
			return p, tea.Batch(p.spinner.Tick, p.loadCmd())
		case "enter":
			if p.cursor < len(p.cards) {
				return p, Navigate(RouteCourseVideos, p.cards[p.cursor].Course.ID)
			}
		case "e":
			if p.cursor < len(p.cards) {
				return p, Navigate(RouteExamStudents, p.cards[p.cursor].Course.ID)
			}
		}
	}
	return p, nil
}

func (p *MyCoursesPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading courses..."
	}
	if p.errText != "" {
		return s.ErrorBox.Render("Error: "+p.errText) + "\n" + s.Muted.Render("press r to retry")
	}
	if len(p.cards) == 0 {
		return s.Muted.Render("No courses allocated to you yet.")
	}

	var sb strings.Builder
	for i, card := range p.cards {
		body := s.Bold.Render(card.Course.CourseName) + "\n" +
			s.Muted.Render(fmt.Sprintf("%s · assigned %s", card.Course.CourseCode, card.Allocation.AssignedDate))
		rendered := s.Card.Render(body)
		if i == p.cursor {
			rendered = s.Card.BorderForeground(s.Theme.Primary).Render(body)
		}
		sb.WriteString(rendered + "\n")
	}
	sb.WriteString(s.Muted.Render("j/k move  enter manage materials  e exams  r reload"))
	return sb.String()
}
