package ui

import (
	"strings"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func TestStaffFeedbackShowsAverageAndMasksAnonymous(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewStaffFeedbackPage(app)
	page.SetSize(100, 40)
	page.Update(feedbackLoadedMsg{summary: &api.FeedbackSummary{
		Feedbacks: []api.Feedback{
			{ID: 9, StudentName: "Anonymous", CourseID: 10, Rating: 4, FeedbackText: "Clear lectures"},
		},
		TotalCount:    1,
		AverageRating: 4,
	}})

	view := page.View()
	if !strings.Contains(view, "4.00 average") {
		t.Fatalf("view should show the average rating:\n%s", view)
	}
	if !strings.Contains(view, "Anonymous") {
		t.Fatalf("anonymous feedback keeps its mask:\n%s", view)
	}
}

func TestFeedbackFormValidatesRating(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStudent)
	page := buildFeedbackForm(app, 10).(*FormPage)
	page.SetValue("rating", "9")
	page.SetValue("feedback_text", "Great course")

	_, cmd := page.Submit()
	if cmd != nil {
		t.Fatal("an out-of-range rating must not produce a command")
	}
	if page.Error() != "Rating must be between 1 and 5" {
		t.Fatalf("error = %q", page.Error())
	}
}

func TestFeedbackFormRequiresText(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStudent)
	page := buildFeedbackForm(app, 10).(*FormPage)
	page.SetValue("rating", "5")

	_, cmd := page.Submit()
	if cmd != nil {
		t.Fatal("missing text must not produce a command")
	}
	if page.Error() != "Feedback text is required" {
		t.Fatalf("error = %q", page.Error())
	}
}

func TestFeedbackFormAcceptsMinimalInput(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStudent)
	page := buildFeedbackForm(app, 10).(*FormPage)
	page.SetValue("rating", "5")
	page.SetValue("feedback_text", "Great course")

	_, cmd := page.Submit()
	if cmd == nil {
		t.Fatal("a valid form should produce the submit command")
	}
}
