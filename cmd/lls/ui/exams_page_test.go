package ui

import (
	"strings"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func examRoster() []api.ExamStudent {
	cca1 := 17.5
	return []api.ExamStudent{
		{ID: 1, StudentCode: "STU001", FullName: "Anna Schmidt", Exam: &api.ExamMarks{ID: 4, CCA1Marks: &cca1}},
		{ID: 2, StudentCode: "STU002", FullName: "Ben Ito"},
	}
}

func newExamsUnderTest(t *testing.T) *ExamsPage {
	t.Helper()
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewExamsPage(app, 10)
	page.Update(examRosterMsg{students: examRoster()})
	return page
}

func TestExamEditorPrefillsStoredMarks(t *testing.T) {
	page := newExamsUnderTest(t)

	page.Update(key("e"))
	if !page.editing || page.editStudent.ID != 1 {
		t.Fatalf("editor should target student 1, got editing=%v id=%d", page.editing, page.editStudent.ID)
	}
	if got := page.inputs[0].Value(); got != "17.5" {
		t.Fatalf("CCA1 prefill = %q, want 17.5", got)
	}
	if got := page.inputs[1].Value(); got != "" {
		t.Fatalf("CCA2 should start empty, got %q", got)
	}
}

func TestExamEditorRejectsNegativeMarks(t *testing.T) {
	page := newExamsUnderTest(t)

	page.Update(key("e"))
	page.inputs[0].SetValue("-3")
	_, cmd := page.Update(key("enter"))
	if cmd != nil {
		t.Fatal("invalid marks must not produce a command")
	}
	if page.errText == "" {
		t.Fatal("invalid marks should surface inline")
	}
}

func TestExamEditorNeedsAtLeastOneEntry(t *testing.T) {
	page := newExamsUnderTest(t)

	page.Update(key("j")) // Ben, no record yet
	page.Update(key("e"))
	_, cmd := page.Update(key("enter"))
	if cmd != nil {
		t.Fatal("an all-empty editor must not produce a command")
	}
	if page.errText == "" {
		t.Fatal("the empty save should surface inline")
	}
}

func TestExamEditorSavesEnteredMarks(t *testing.T) {
	page := newExamsUnderTest(t)

	page.Update(key("j"))
	page.Update(key("e"))
	page.inputs[1].SetValue("12")
	_, cmd := page.Update(key("enter"))
	if cmd == nil {
		t.Fatal("a valid save should produce the save command")
	}
	if !page.busy {
		t.Fatal("page should be busy while the save runs")
	}
}

func TestDeleteNeedsAnExistingRecord(t *testing.T) {
	page := newExamsUnderTest(t)

	page.Update(key("j")) // Ben has no exam record
	page.Update(key("d"))
	if page.confirming {
		t.Fatal("a student without a record has nothing to delete")
	}

	page.Update(key("k")) // back to Anna
	page.Update(key("d"))
	if !page.confirming || page.confirmID != 4 {
		t.Fatalf("modal should target exam record 4, got confirming=%v id=%d", page.confirming, page.confirmID)
	}
}

func TestExamReloadUnderConfirmModalClosesIt(t *testing.T) {
	page := newExamsUnderTest(t)

	page.Update(key("d"))
	page.Update(examRosterMsg{students: nil})
	if page.confirming {
		t.Fatal("a reload must close the confirm modal")
	}
	_, cmd := page.Update(key("y"))
	if cmd != nil {
		t.Fatal("y after the modal closed must not produce a command")
	}
}

func TestRosterShowsMarksAndGaps(t *testing.T) {
	page := newExamsUnderTest(t)
	page.SetSize(100, 40)

	view := page.View()
	if !strings.Contains(view, "Anna Schmidt") || !strings.Contains(view, "17.5") {
		t.Fatalf("view should show the stored marks:\n%s", view)
	}
	if !strings.Contains(view, "Ben Ito") {
		t.Fatalf("view should show students without records:\n%s", view)
	}
}
