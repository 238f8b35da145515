package ui

import (
	"strings"
	"testing"
)

func enqueue(t *testing.T, m ToastModel, kind ToastKind, text string) ToastModel {
	t.Helper()
	msg := ShowToast(kind, text)()
	toast, ok := msg.(ToastMsg)
	if !ok {
		t.Fatalf("ShowToast produced %T", msg)
	}
	m, _ = m.Update(toast)
	return m
}

func TestToastsQueueInInsertionOrder(t *testing.T) {
	m := NewToastModel(DefaultStyles())
	m = enqueue(t, m, ToastSuccess, "saved")
	m = enqueue(t, m, ToastError, "failed")

	if m.Count() != 2 {
		t.Fatalf("count = %d, want 2", m.Count())
	}
	if m.toasts[0].ID >= m.toasts[1].ID {
		t.Fatal("toast IDs must follow insertion order")
	}
	view := m.View()
	if !strings.Contains(view, "saved") || !strings.Contains(view, "failed") {
		t.Fatalf("view missing toasts:\n%s", view)
	}
}

func TestExpiryRemovesOnlyItsToast(t *testing.T) {
	m := NewToastModel(DefaultStyles())
	m = enqueue(t, m, ToastInfo, "one")
	m = enqueue(t, m, ToastInfo, "two")

	first := m.toasts[0].ID
	m, _ = m.Update(toastExpireMsg{id: first})
	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}
	if !strings.Contains(m.View(), "two") {
		t.Fatal("the younger toast should survive")
	}
}

func TestDismissNewestDropsTheLatest(t *testing.T) {
	m := NewToastModel(DefaultStyles())
	m = enqueue(t, m, ToastInfo, "old")
	m = enqueue(t, m, ToastInfo, "new")

	m.DismissNewest()
	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}
	if !strings.Contains(m.View(), "old") {
		t.Fatal("dismiss should drop the newest toast, not the oldest")
	}
}

func TestDismissOnEmptyOverlayIsSafe(t *testing.T) {
	m := NewToastModel(DefaultStyles())
	m.DismissNewest()
	if m.Active() {
		t.Fatal("empty overlay should stay empty")
	}
}

func TestEnqueueSchedulesExpiry(t *testing.T) {
	m := NewToastModel(DefaultStyles())
	msg := ShowToast(ToastWarning, "heads up")()
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("enqueuing a toast must schedule its expiry")
	}
}
