package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func testPrincipal() api.Principal {
	return api.Principal{
		ID:       7,
		Email:    "anna@example.com",
		FullName: "Anna Schmidt",
		Role:     api.RoleStudent,
	}
}

func TestStoreStartsAnonymous(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("fresh store should be anonymous")
	}
	if _, ok := s.Principal(); ok {
		t.Fatal("fresh store should hold no principal")
	}
	if s.Token() != "" {
		t.Fatal("fresh store should hold no token")
	}
}

func TestLoginPersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Login(testPrincipal(), "tok-123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.IsAuthenticated() {
		t.Fatal("session did not survive reopen")
	}
	user, ok := reopened.Principal()
	if !ok || user.Email != "anna@example.com" || user.Role != api.RoleStudent {
		t.Fatalf("unexpected principal after reopen: %+v", user)
	}
	if reopened.Token() != "tok-123" {
		t.Fatalf("token = %q, want tok-123", reopened.Token())
	}
}

func TestNewLoginOverwritesOldSession(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Login(testPrincipal(), "old"); err != nil {
		t.Fatalf("first login: %v", err)
	}

	second := testPrincipal()
	second.ID = 9
	second.Email = "ben@example.com"
	if err := s.Login(second, "new"); err != nil {
		t.Fatalf("second login: %v", err)
	}

	user, _ := s.Principal()
	if user.Email != "ben@example.com" || s.Token() != "new" {
		t.Fatalf("second login did not replace the first: %+v token=%q", user, s.Token())
	}
}

func TestCorruptSessionFileRecoversToAnonymous(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, sessionFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("corrupt file should not be an error, got %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("store should be anonymous after corrupt file")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("corrupt session file should be removed")
	}
}

func TestSessionWithUnknownRoleIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, sessionFileName)
	data := []byte(`{"user":{"id":1,"role":"superuser"},"token":"tok"}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write session: %v", err)
	}

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("unknown role should not authenticate")
	}
}

func TestLogoutRemovesOnlySessionFile(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(other, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Login(testPrincipal(), "tok"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if s.IsAuthenticated() {
		t.Fatal("store should be anonymous after logout")
	}
	if _, err := os.Stat(filepath.Join(dir, sessionFileName)); !os.IsNotExist(err) {
		t.Fatal("session file should be gone after logout")
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatalf("logout must not touch other files: %v", err)
	}
}

func TestLogoutWhenAnonymousIsNoError(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout on anonymous store: %v", err)
	}
}
