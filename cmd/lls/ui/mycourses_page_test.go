package ui

import (
	"strings"
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func TestJoinCoursesMatchesAllocations(t *testing.T) {
	allocations := []api.StaffCourse{
		{ID: 1, StaffID: 42, CourseID: 10, AssignedDate: "2026-01-05"},
		{ID: 2, StaffID: 42, CourseID: 11, AssignedDate: "2026-01-06"},
		{ID: 3, StaffID: 42, CourseID: 99, AssignedDate: "2026-01-07"}, // deleted course
	}
	courses := []api.Course{
		{ID: 10, CourseCode: "GER-A1", CourseName: "Basic Grammar"},
		{ID: 11, CourseCode: "GER-A2", CourseName: "Conversation"},
		{ID: 12, CourseCode: "FRA-A1", CourseName: "French Intro"},
	}

	cards := joinCourses(allocations, courses)
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	if cards[0].Course.CourseName != "Basic Grammar" || cards[1].Course.CourseName != "Conversation" {
		t.Fatalf("unexpected join order: %+v", cards)
	}
}

func TestOpeningACourseCardNavigatesToItsMaterials(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewMyCoursesPage(app)
	page.Update(myCoursesMsg{cards: []courseCard{
		{Allocation: api.StaffCourse{ID: 1, CourseID: 10}, Course: api.Course{ID: 10, CourseName: "Basic Grammar"}},
		{Allocation: api.StaffCourse{ID: 2, CourseID: 11}, Course: api.Course{ID: 11, CourseName: "Conversation"}},
	}})

	_, cmd := page.Update(key("enter"))
	nav, ok := findNavigate(cmd)
	if !ok {
		t.Fatal("enter should navigate to the course materials")
	}
	path := RoutePath(nav.Route, nav.Arg)
	if !strings.Contains(path, "/course/10/videos") {
		t.Fatalf("path = %q, want it to contain /course/10/videos", path)
	}
}

func TestMyCoursesRendersOneCardPerAllocation(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewMyCoursesPage(app)
	page.SetSize(100, 40)
	page.Update(myCoursesMsg{cards: []courseCard{
		{Course: api.Course{ID: 10, CourseName: "Basic Grammar", CourseCode: "GER-A1"}},
		{Course: api.Course{ID: 11, CourseName: "Conversation", CourseCode: "GER-A2"}},
	}})

	view := page.View()
	if !strings.Contains(view, "Basic Grammar") || !strings.Contains(view, "Conversation") {
		t.Fatalf("view should show both courses:\n%s", view)
	}
}
