package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Page is one screen in the shell's content slot.
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	SetSize(w, h int)
	Title() string
}

// Route identifies a screen. The value is the path template; templates
// with a %d verb take the navigation argument (a record id).
type Route string

// RoutePath renders the concrete path for a route and argument.
func RoutePath(r Route, arg int) string {
	if strings.Contains(string(r), "%d") {
		return fmt.Sprintf(string(r), arg)
	}
	return string(r)
}

// NavigateMsg requests a screen change. The app's router guards it by
// role before mounting the target page.
type NavigateMsg struct {
	Route Route
	Arg   int
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(route Route, arg int) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route, Arg: arg} }
}

// LogoutMsg requests session teardown and a return to the login screen.
type LogoutMsg struct{}

// BadgeMsg carries the polled unread counters for the header badges.
type BadgeMsg struct {
	UnreadMessages      int
	UnreadNotifications int
}

// ToastKind classifies a toast for styling.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
)

// Toast is one ephemeral overlay message.
type Toast struct {
	ID   int64
	Text string
	Kind ToastKind
}

// ToastMsg enqueues a toast.
type ToastMsg struct{ Toast Toast }

// toastExpireMsg removes a toast after its display window.
type toastExpireMsg struct{ id int64 }

// ShowToast returns a command that enqueues a toast. IDs are monotonic
// timestamps, matching insertion order.
func ShowToast(kind ToastKind, text string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Toast: Toast{ID: time.Now().UnixNano(), Text: text, Kind: kind}}
	}
}
