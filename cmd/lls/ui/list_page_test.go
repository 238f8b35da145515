package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func newListUnderTest(t *testing.T, deleted *[]int) *ListPage {
	t.Helper()
	app := newTestApp(t)
	loginAs(t, app, api.RoleAdmin)

	page := NewListPage(app, ListConfig{
		PageTitle: "Things",
		Headers:   []string{"ID", "Name"},
		Load: func(context.Context) ([]ListRow, error) {
			return []ListRow{
				{ID: 1, Cells: []string{"1", "first"}},
				{ID: 2, Cells: []string{"2", "second"}},
			}, nil
		},
		Delete: func(_ context.Context, id int) error {
			*deleted = append(*deleted, id)
			return nil
		},
	})
	page.Update(listLoadedMsg{rows: []ListRow{
		{ID: 1, Cells: []string{"1", "first"}},
		{ID: 2, Cells: []string{"2", "second"}},
	}})
	return page
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	page.Update(key("d"))
	if !page.confirming {
		t.Fatal("d should open the confirm modal")
	}
	if len(deleted) != 0 {
		t.Fatal("nothing may be deleted before confirmation")
	}
}

func TestDecliningConfirmationDeletesNothing(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	page.Update(key("d"))
	_, cmd := page.Update(key("n"))
	if cmd != nil {
		t.Fatal("declining must not produce a command")
	}
	if page.confirming {
		t.Fatal("modal should close on decline")
	}
	if len(deleted) != 0 {
		t.Fatalf("deleted = %v, want none", deleted)
	}
}

func TestEscClosesConfirmWithoutDeleting(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	page.Update(key("d"))
	page.Update(key("esc"))
	if page.confirming || len(deleted) != 0 {
		t.Fatal("esc should cancel the delete")
	}
}

func TestConfirmingDeletesSelectedRow(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	page.Update(key("j")) // move to the second row
	page.Update(key("d"))
	_, cmd := page.Update(key("y"))
	if cmd == nil {
		t.Fatal("confirming should produce the delete command")
	}

	msgs := drain(cmd)
	if len(deleted) != 1 || deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", deleted)
	}

	// Feeding the result back reloads the list.
	for _, msg := range msgs {
		if done, ok := msg.(listDeletedMsg); ok {
			_, reload := page.Update(done)
			if reload == nil {
				t.Fatal("a successful delete should trigger a reload")
			}
		}
	}
}

func TestReloadUnderConfirmModalClosesIt(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	page.Update(key("d"))
	// A reload finishes while the modal is open and the list is now empty.
	page.Update(listLoadedMsg{rows: nil})
	if page.confirming {
		t.Fatal("a reload must close the confirm modal")
	}

	// Confirming against the vanished row must be inert, not a panic.
	_, cmd := page.Update(key("y"))
	if cmd != nil {
		t.Fatal("y after the modal closed must not produce a command")
	}
	if len(deleted) != 0 {
		t.Fatalf("deleted = %v, want none", deleted)
	}
}

func TestConfirmTargetsRowCapturedAtModalOpen(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	page.Update(key("j")) // select row ID 2
	page.Update(key("d"))
	_, cmd := page.Update(key("y"))
	drain(cmd)
	if len(deleted) != 1 || deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", deleted)
	}
}

func TestLoadFailureShowsInlineErrorAndToast(t *testing.T) {
	var deleted []int
	page := newListUnderTest(t, &deleted)

	_, cmd := page.Update(listFailedMsg{err: errors.New("connection refused")})
	if page.errText == "" {
		t.Fatal("load failure should set the inline banner")
	}
	if len(page.rows) != 0 {
		t.Fatal("failed load must clear stale rows")
	}

	msgs := drain(cmd)
	found := false
	for _, msg := range msgs {
		if _, ok := msg.(ToastMsg); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("load failure should also enqueue a toast")
	}
}

func TestEnterNavigatesToOpenRoute(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewListPage(app, ListConfig{
		PageTitle: "Assignments",
		Headers:   []string{"ID"},
		Load:      func(context.Context) ([]ListRow, error) { return nil, nil },
		OpenRoute: RouteSubmissions,
	})
	page.Update(listLoadedMsg{rows: []ListRow{{ID: 8, Cells: []string{"8"}}}})

	_, cmd := page.Update(key("enter"))
	nav, ok := findNavigate(cmd)
	if !ok {
		t.Fatal("enter should navigate to the open route")
	}
	if nav.Route != RouteSubmissions || nav.Arg != 8 {
		t.Fatalf("navigate = %+v, want submissions for row 8", nav)
	}
}
