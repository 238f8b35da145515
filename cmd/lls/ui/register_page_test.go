package ui

import (
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func TestShortPasswordBlocksLocally(t *testing.T) {
	page := NewRegisterPage(newTestApp(t))
	page.SetAccount("Anna Schmidt", "anna@example.com", "abc12", "abc12")

	_, cmd := page.AdvanceFromAccount()
	if cmd != nil {
		t.Fatal("validation failure must not produce a command")
	}
	if page.Step() != registerStepAccount {
		t.Fatal("wizard must stay on the account step")
	}
	if page.Error() != "Password must be at least 6 characters" {
		t.Fatalf("error = %q", page.Error())
	}
}

func TestMismatchedPasswordsBlockLocally(t *testing.T) {
	page := NewRegisterPage(newTestApp(t))
	page.SetAccount("Anna Schmidt", "anna@example.com", "abcdef", "abcdeg")

	_, cmd := page.AdvanceFromAccount()
	if cmd != nil {
		t.Fatal("validation failure must not produce a command")
	}
	if page.Error() != "Passwords do not match" {
		t.Fatalf("error = %q", page.Error())
	}
}

func TestInvalidEmailBlocksLocally(t *testing.T) {
	page := NewRegisterPage(newTestApp(t))
	page.SetAccount("Anna Schmidt", "not-an-email", "abcdef", "abcdef")

	_, cmd := page.AdvanceFromAccount()
	if cmd != nil {
		t.Fatal("validation failure must not produce a command")
	}
	if page.Error() != "Please enter a valid email address" {
		t.Fatalf("error = %q", page.Error())
	}
}

func TestValidAccountLoadsOptions(t *testing.T) {
	page := NewRegisterPage(newTestApp(t))
	page.SetAccount("Anna Schmidt", "anna@example.com", "abcdef", "abcdef")

	_, cmd := page.AdvanceFromAccount()
	if cmd == nil {
		t.Fatal("a valid account should start loading the option lists")
	}
	if page.Error() != "" {
		t.Fatalf("unexpected error: %q", page.Error())
	}
	if !page.loading {
		t.Fatal("page should report loading while options are fetched")
	}
}

func TestOptionLoadFailureKeepsWizardOnStepOne(t *testing.T) {
	page := NewRegisterPage(newTestApp(t))
	page.SetAccount("Anna Schmidt", "anna@example.com", "abcdef", "abcdef")
	page.AdvanceFromAccount()

	page.Update(registerOptionsMsg{err: &api.Error{Kind: api.KindTransport, Message: "connection refused"}})
	if page.Step() != registerStepAccount {
		t.Fatal("a failed join must not advance the wizard")
	}
	if len(page.programs) != 0 || len(page.courses) != 0 {
		t.Fatal("no partial option lists may be applied")
	}
}

func TestOptionsAdvanceToProgramStep(t *testing.T) {
	page := NewRegisterPage(newTestApp(t))
	page.SetAccount("Anna Schmidt", "anna@example.com", "abcdef", "abcdef")
	page.AdvanceFromAccount()

	page.Update(registerOptionsMsg{
		programs:  []api.Program{{ID: 1, ProgramName: "German A1"}},
		semesters: []api.Semester{{ID: 2, SemesterName: "Semester 1"}},
		courses: []api.Course{
			{ID: 10, CourseName: "Grammar", ProgramID: 1, SemesterID: 2},
			{ID: 11, CourseName: "Other", ProgramID: 9, SemesterID: 2},
		},
	})
	if page.Step() != registerStepProgram {
		t.Fatalf("step = %d, want program step", page.Step())
	}

	filtered := page.filteredCourses()
	if len(filtered) != 1 || filtered[0].ID != 10 {
		t.Fatalf("filtered courses = %+v, want just course 10", filtered)
	}
}
