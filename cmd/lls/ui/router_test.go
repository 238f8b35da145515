package ui

import (
	"strings"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func TestRoutePathFillsArgument(t *testing.T) {
	got := RoutePath(RouteCourseVideos, 10)
	if !strings.Contains(got, "/course/10/videos") {
		t.Fatalf("RoutePath = %q, want it to contain /course/10/videos", got)
	}
	if RoutePath(RoutePrograms, 99) != "/admin/programs" {
		t.Fatalf("static routes must ignore the argument")
	}
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	route, allowed := Resolve(RouteAdminDashboard, nil)
	if allowed || route != RouteLogin {
		t.Fatalf("Resolve = (%q, %v), want (%q, false)", route, allowed, RouteLogin)
	}
}

func TestPublicRoutesNeedNoPrincipal(t *testing.T) {
	for _, r := range []Route{RouteLogin, RouteRegister} {
		route, allowed := Resolve(r, nil)
		if !allowed || route != r {
			t.Fatalf("Resolve(%q) = (%q, %v), want allowed", r, route, allowed)
		}
	}
}

func TestWrongRoleIsSentToOwnDashboard(t *testing.T) {
	student := &api.Principal{ID: 1, Role: api.RoleStudent}
	route, allowed := Resolve(RouteAcademicYears, student)
	if allowed || route != RouteStudentDashboard {
		t.Fatalf("Resolve = (%q, %v), want (%q, false)", route, allowed, RouteStudentDashboard)
	}

	staff := &api.Principal{ID: 2, Role: api.RoleStaff}
	route, allowed = Resolve(RouteStudents, staff)
	if allowed || route != RouteStaffDashboard {
		t.Fatalf("Resolve = (%q, %v), want (%q, false)", route, allowed, RouteStaffDashboard)
	}
}

func TestMatchingRoleIsAllowed(t *testing.T) {
	admin := &api.Principal{ID: 1, Role: api.RoleAdmin}
	route, allowed := Resolve(RouteAcademicYears, admin)
	if !allowed || route != RouteAcademicYears {
		t.Fatalf("Resolve = (%q, %v), want allowed", route, allowed)
	}
}

func TestSharedRoutesAllowEveryRole(t *testing.T) {
	for _, role := range []api.Role{api.RoleAdmin, api.RoleStaff, api.RoleStudent} {
		p := &api.Principal{ID: 1, Role: role}
		if _, allowed := Resolve(RouteInbox, p); !allowed {
			t.Fatalf("role %s should reach the inbox", role)
		}
	}
}

func TestUnknownRouteFallsBackToDashboard(t *testing.T) {
	student := &api.Principal{ID: 1, Role: api.RoleStudent}
	route, allowed := Resolve(Route("/nope"), student)
	if allowed || route != RouteStudentDashboard {
		t.Fatalf("Resolve = (%q, %v), want student dashboard", route, allowed)
	}
}

func TestEveryRouteHasABuilder(t *testing.T) {
	for route, def := range routeDefs {
		if def.build == nil {
			t.Fatalf("route %q has no page builder", route)
		}
	}
}

func TestGuardedNavigationMountsOwnDashboard(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStudent)

	app.Update(NavigateMsg{Route: RouteAcademicYears})
	if app.Route() != RouteStudentDashboard {
		t.Fatalf("route = %q, want %q", app.Route(), RouteStudentDashboard)
	}
	if _, ok := app.ActivePage().(*StudentDashboardPage); !ok {
		t.Fatalf("mounted page is %T, want *StudentDashboardPage", app.ActivePage())
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	app.Update(NavigateMsg{Route: RouteStaffDashboard})

	app.Update(LogoutMsg{})
	if app.Route() != RouteLogin {
		t.Fatalf("route after logout = %q, want %q", app.Route(), RouteLogin)
	}
	if app.session.IsAuthenticated() {
		t.Fatal("session should be cleared on logout")
	}
}
