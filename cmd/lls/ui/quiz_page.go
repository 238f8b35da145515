package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

var optionKeys = []string{"A", "B", "C", "D"}

type quizLoadedMsg struct {
	quiz *api.Quiz
	err  error
}

type attemptDoneMsg struct {
	result   *api.AttemptResult
	selected string
	err      error
}

// QuizPage plays one course quiz. Each question is answered exactly once:
// submitting scores it and shows feedback, advancing past an
// already-attempted question never touches the network, and the backend's
// "already attempted" rejection is absorbed by marking the question
// attempted locally.
type QuizPage struct {
	app      *App
	courseID int

	quiz      *api.Quiz
	index     int
	optionIdx int
	// feedback holds the scoring of the just-submitted answer until the
	// student advances.
	feedback   *api.AttemptResult
	selected   string
	submitting bool
	finished   bool
	loading    bool
	errText    string

	// submitFn is swappable so tests can observe or forbid network calls.
	submitFn func(ctx context.Context, mcqID, studentID int, selected string) (*api.AttemptResult, error)

	spinner spinner.Model
	width   int
	height  int
}

func NewQuizPage(app *App, courseID int) *QuizPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = app.styles.Spinner
	return &QuizPage{
		app:      app,
		courseID: courseID,
		spinner:  sp,
		loading:  true,
		submitFn: app.client.MCQs().SubmitAnswer,
	}
}

func (p *QuizPage) Title() string    { return fmt.Sprintf("Quiz · Course %d", p.courseID) }
func (p *QuizPage) SetSize(w, h int) { p.width, p.height = w, h }

func (p *QuizPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.loadCmd())
}

// Index exposes the current question position, used by tests.
func (p *QuizPage) Index() int { return p.index }

// Finished reports whether the player reached the summary screen.
func (p *QuizPage) Finished() bool { return p.finished }

// SetQuiz installs a quiz directly, used by tests.
func (p *QuizPage) SetQuiz(q *api.Quiz) {
	p.quiz = q
	p.loading = false
}

func (p *QuizPage) studentID() int {
	if prin := p.app.principal(); prin != nil {
		return prin.ID
	}
	return 0
}

func (p *QuizPage) loadCmd() tea.Cmd {
	studentID := p.studentID()
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		quiz, err := p.app.client.MCQs().CourseQuiz(ctx, p.courseID, studentID)
		return quizLoadedMsg{quiz: quiz, err: err}
	}
}

func (p *QuizPage) submitCmd(q api.Question, selected string) tea.Cmd {
	studentID := p.studentID()
	return func() tea.Msg {
		ctx, cancel := p.app.requestContext()
		defer cancel()
		result, err := p.submitFn(ctx, q.ID, studentID, selected)
		return attemptDoneMsg{result: result, selected: selected, err: err}
	}
}

func (p *QuizPage) current() *api.Question {
	if p.quiz == nil || p.index >= len(p.quiz.Questions) {
		return nil
	}
	return &p.quiz.Questions[p.index]
}

// advance moves to the next question or the summary, clearing feedback.
func (p *QuizPage) advance() {
	p.feedback = nil
	p.selected = ""
	p.optionIdx = 0
	p.errText = ""
	if p.quiz != nil && p.index < len(p.quiz.Questions)-1 {
		p.index++
		return
	}
	p.finished = true
}

// options returns the non-empty option keys of the current question.
func (p *QuizPage) options() []string {
	q := p.current()
	if q == nil {
		return nil
	}
	var keys []string
	for _, k := range optionKeys {
		if q.Option(k) != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (p *QuizPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case quizLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Failed to load quiz")
		}
		p.errText = ""
		p.quiz = msg.quiz
		if len(p.quiz.Questions) == 0 {
			p.finished = true
		}
		return p, nil

	case attemptDoneMsg:
		p.submitting = false
		if msg.err != nil {
			// A re-attempt rejection means the server already has this
			// answer: reconcile the local flag and move on.
			if api.IsStatus(msg.err, 400) {
				if q := p.current(); q != nil && !q.Attempted {
					q.Attempted = true
					p.quiz.AttemptedCount++
				}
				p.advance()
				return p, nil
			}
			p.errText = msg.err.Error()
			return p, ShowToast(ToastError, "Could not submit answer")
		}
		if q := p.current(); q != nil && !q.Attempted {
			q.Attempted = true
			p.quiz.AttemptedCount++
		}
		p.feedback = msg.result
		p.selected = msg.selected
		return p, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.updateKeys(msg)
	}
	return p, nil
}

func (p *QuizPage) updateKeys(msg tea.KeyMsg) (Page, tea.Cmd) {
	if p.loading || p.submitting {
		return p, nil
	}
	if p.finished {
		switch msg.String() {
		case "enter", "b":
			return p, Navigate(RouteQuizResults, 0)
		}
		return p, nil
	}

	q := p.current()
	if q == nil {
		return p, nil
	}
	opts := p.options()

	switch key := msg.String(); key {
	case "up", "k":
		if p.feedback == nil && !q.Attempted && p.optionIdx > 0 {
			p.optionIdx--
		}
	case "down", "j":
		if p.feedback == nil && !q.Attempted && p.optionIdx < len(opts)-1 {
			p.optionIdx++
		}
	case "a", "b", "c", "d", "1", "2", "3", "4":
		if p.feedback != nil || q.Attempted {
			break
		}
		idx := strings.IndexAny("abcd", key)
		if idx < 0 {
			idx = strings.IndexAny("1234", key)
		}
		if idx >= 0 && idx < len(opts) {
			p.optionIdx = idx
		}
	case "enter", "n":
		// Attempted questions (and shown feedback) advance without any
		// network call; only a fresh answer is submitted.
		if q.Attempted && p.feedback == nil {
			p.advance()
			return p, nil
		}
		if p.feedback != nil {
			p.advance()
			return p, nil
		}
		if p.optionIdx < len(opts) {
			p.submitting = true
			return p, p.submitCmd(*q, opts[p.optionIdx])
		}
	}
	return p, nil
}

func (p *QuizPage) View() string {
	s := p.app.styles
	if p.loading {
		return p.spinner.View() + " Loading quiz..."
	}
	if p.errText != "" && p.quiz == nil {
		return s.ErrorBox.Render("Error: "+p.errText)
	}

	if p.finished {
		var sb strings.Builder
		sb.WriteString(s.Title.Render("Quiz Complete"))
		sb.WriteString("\n")
		if p.quiz != nil {
			sb.WriteString(s.Body.Render(fmt.Sprintf("Attempted %d of %d questions.",
				p.quiz.AttemptedCount, p.quiz.TotalQuestions)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n" + s.Muted.Render("enter view results  esc back"))
		return sb.String()
	}

	q := p.current()
	if q == nil {
		return s.Muted.Render("This quiz has no questions yet.")
	}

	var sb strings.Builder
	sb.WriteString(s.Subtitle.Render(fmt.Sprintf("Question %d of %d · %.0f marks",
		p.index+1, len(p.quiz.Questions), q.Marks)))
	sb.WriteString("\n\n")
	sb.WriteString(s.Bold.Render(q.QuestionText))
	sb.WriteString("\n\n")

	for i, key := range p.options() {
		line := fmt.Sprintf("%s) %s", key, q.Option(key))
		switch {
		case p.feedback != nil && key == p.feedback.CorrectAnswer:
			line = s.Success.Render(line + "  ✓")
		case p.feedback != nil && key == p.selected && !p.feedback.IsCorrect:
			line = s.Error.Render(line + "  ✗")
		case p.feedback == nil && !q.Attempted && i == p.optionIdx:
			line = s.NavItemActive.Render(line)
		default:
			line = s.NavItem.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")

	switch {
	case p.submitting:
		sb.WriteString(s.Muted.Render("Checking..."))
	case q.Attempted && p.feedback == nil:
		sb.WriteString(s.Info.Render("Already answered.") + "\n" + s.Muted.Render("enter next question"))
	case p.feedback != nil:
		if p.feedback.IsCorrect {
			sb.WriteString(s.Success.Render(fmt.Sprintf("Correct! +%.1f marks", p.feedback.MarksEarned)))
		} else {
			sb.WriteString(s.Error.Render("Incorrect. The answer was " + p.feedback.CorrectAnswer + "."))
		}
		sb.WriteString("\n" + s.Muted.Render("enter next question"))
	default:
		sb.WriteString(s.Muted.Render("j/k or a-d choose  enter submit"))
	}

	if p.errText != "" {
		sb.WriteString("\n" + s.ErrorBox.Render(p.errText))
	}
	return sb.String()
}
