package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func newFormUnderTest(t *testing.T, submitted *[]map[string]string) *FormPage {
	t.Helper()
	app := newTestApp(t)
	loginAs(t, app, api.RoleAdmin)
	return NewFormPage(app, FormConfig{
		PageTitle: "New Thing",
		Fields: []FormField{
			{Name: "name", Label: "Name"},
			{Name: "code", Label: "Code"},
		},
		Validate: func(v map[string]string) string {
			return requireAll(v, "name", "code")
		},
		Submit: func(_ context.Context, v map[string]string) error {
			*submitted = append(*submitted, v)
			return nil
		},
		SuccessRoute: RoutePrograms,
	})
}

func TestInvalidFormNeverSubmits(t *testing.T) {
	var submitted []map[string]string
	page := newFormUnderTest(t, &submitted)
	page.SetValue("name", "German A1")
	// code left empty

	_, cmd := page.Submit()
	if cmd != nil {
		t.Fatal("validation failure must not produce a command")
	}
	if page.Error() == "" {
		t.Fatal("the validation message should surface inline")
	}
	if len(submitted) != 0 {
		t.Fatal("nothing may reach the submit callback")
	}
}

func TestValidFormSubmitsAndNavigates(t *testing.T) {
	var submitted []map[string]string
	page := newFormUnderTest(t, &submitted)
	page.SetValue("name", "German A1")
	page.SetValue("code", "GER-A1")

	_, cmd := page.Submit()
	if cmd == nil {
		t.Fatal("a valid form should produce the submit command")
	}

	msgs := drain(cmd)
	if len(submitted) != 1 || submitted[0]["code"] != "GER-A1" {
		t.Fatalf("submitted = %+v", submitted)
	}

	for _, msg := range msgs {
		if done, ok := msg.(formDoneMsg); ok {
			_, after := page.Update(done)
			nav, found := findNavigate(after)
			if !found || nav.Route != RoutePrograms {
				t.Fatalf("success should navigate to the list, got %+v", nav)
			}
		}
	}
}

func TestSubmitFailureStaysOnForm(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleAdmin)
	page := NewFormPage(app, FormConfig{
		PageTitle: "New Thing",
		Fields:    []FormField{{Name: "name", Label: "Name"}},
		Submit: func(context.Context, map[string]string) error {
			return errors.New("duplicate name")
		},
		SuccessRoute: RoutePrograms,
	})
	page.SetValue("name", "German A1")

	_, cmd := page.Submit()
	msgs := drain(cmd)
	for _, msg := range msgs {
		if done, ok := msg.(formDoneMsg); ok {
			_, after := page.Update(done)
			if _, found := findNavigate(after); found {
				t.Fatal("a failed submit must not navigate away")
			}
		}
	}
	if page.Error() != "duplicate name" {
		t.Fatalf("error = %q", page.Error())
	}
	if page.Submitting() {
		t.Fatal("submitting flag should clear on failure")
	}
}

func TestDoubleSubmitIsIgnoredWhileBusy(t *testing.T) {
	var submitted []map[string]string
	page := newFormUnderTest(t, &submitted)
	page.SetValue("name", "a")
	page.SetValue("code", "b")

	_, first := page.Submit()
	if first == nil {
		t.Fatal("first submit should fire")
	}
	_, second := page.Submit()
	if second != nil {
		t.Fatal("second submit while busy should be a no-op")
	}
}
