package ui

import (
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func newInboxUnderTest(t *testing.T) *InboxPage {
	t.Helper()
	app := newTestApp(t)
	loginAs(t, app, api.RoleStudent)
	page := NewInboxPage(app)
	page.Update(mailboxLoadedMsg{messages: []api.Message{
		{ID: 7, SenderName: "Admin", Subject: "Welcome"},
	}})
	return page
}

func TestInboxReloadUnderConfirmModalClosesIt(t *testing.T) {
	page := newInboxUnderTest(t)

	page.Update(key("d"))
	if !page.confirming {
		t.Fatal("d should open the confirm modal")
	}

	// The mailbox refreshes to empty while the modal is open.
	page.Update(mailboxLoadedMsg{messages: nil})
	if page.confirming {
		t.Fatal("a reload must close the confirm modal")
	}

	_, cmd := page.Update(key("y"))
	if cmd != nil {
		t.Fatal("y after the modal closed must not produce a command")
	}
}

func TestInboxConfirmCapturesMessageAtModalOpen(t *testing.T) {
	page := newInboxUnderTest(t)

	page.Update(key("d"))
	if page.confirmID != 7 {
		t.Fatalf("confirmID = %d, want 7", page.confirmID)
	}
}

func TestStaleTabReplyIsIgnored(t *testing.T) {
	page := newInboxUnderTest(t)

	page.Update(key("tab")) // now on the sent tab, loading
	page.Update(mailboxLoadedMsg{messages: []api.Message{{ID: 9}}, sent: false})
	if !page.loading {
		t.Fatal("a reply for the other tab must not end the load")
	}
	if len(page.messages) == 1 && page.messages[0].ID == 9 {
		t.Fatal("stale inbox rows must not replace the sent view")
	}
}
