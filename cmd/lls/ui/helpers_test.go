package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arunvs830/lls-app-sub000/internal/api"
	"github.com/arunvs830/lls-app-sub000/internal/config"
	"github.com/arunvs830/lls-app-sub000/internal/session"
)

// newTestApp builds an App over a throwaway session dir and an unreachable
// backend. Pages under test never touch the network: loads and submits are
// driven by injecting their messages directly.
func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	client := api.NewClient("http://127.0.0.1:0", time.Second, store.Token, nil)
	cfg := config.Config{
		APIBaseURL:   "http://127.0.0.1:0",
		Timeout:      time.Second,
		Theme:        "light",
		PollInterval: time.Second,
	}
	return NewApp(client, store, cfg, zap.NewNop())
}

func loginAs(t *testing.T, app *App, role api.Role) api.Principal {
	t.Helper()
	user := api.Principal{
		ID:       42,
		Email:    "user@example.com",
		FullName: "Test User",
		Role:     role,
	}
	if err := app.session.Login(user, "tok-test"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return user
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs a command tree and returns every message it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findNavigate extracts the first NavigateMsg from a command tree.
func findNavigate(cmd tea.Cmd) (NavigateMsg, bool) {
	for _, msg := range drain(cmd) {
		if nav, ok := msg.(NavigateMsg); ok {
			return nav, true
		}
	}
	return NavigateMsg{}, false
}
