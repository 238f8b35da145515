package ui

import (
	"strings"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func TestGradingEditorSurvivesAShrunkenReload(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewSubmissionsPage(app, 4)
	page.Update(submissionsLoadedMsg{submissions: []api.Submission{
		{ID: 5, StudentID: 42, Status: "submitted"},
	}})

	page.Update(key("e"))
	if !page.grading || page.gradeID != 5 {
		t.Fatalf("editor should target submission 5, got grading=%v id=%d", page.grading, page.gradeID)
	}

	// A stale reload lands with the row gone; the editor keeps its target.
	page.Update(submissionsLoadedMsg{submissions: nil})
	page.SetSize(100, 40)
	if view := page.View(); !strings.Contains(view, "Grade submission 5") {
		t.Fatalf("editor should still address submission 5:\n%s", view)
	}

	page.marksInput.SetValue("8")
	_, cmd := page.Update(key("enter"))
	if cmd == nil {
		t.Fatal("saving should produce the evaluate command")
	}
}

func TestGradingRejectsNegativeMarks(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewSubmissionsPage(app, 4)
	page.Update(submissionsLoadedMsg{submissions: []api.Submission{
		{ID: 5, StudentID: 42, Status: "submitted"},
	}})

	page.Update(key("e"))
	page.marksInput.SetValue("-1")
	_, cmd := page.Update(key("enter"))
	if cmd != nil {
		t.Fatal("invalid marks must not produce a command")
	}
	if page.errText == "" {
		t.Fatal("invalid marks should surface inline")
	}
}
