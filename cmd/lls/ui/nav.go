package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// NavItem is one sidebar entry. Items are static ordered lists per role;
// reachability is enforced by the router's guard, not by what is listed
// here.
type NavItem struct {
	Label string
	Route Route
	// Badge selects which polled counter decorates the item.
	Badge badgeKind
}

type badgeKind int

const (
	badgeNone badgeKind = iota
	badgeMessages
	badgeNotifications
)

var adminNav = []NavItem{
	{Label: "Dashboard", Route: RouteAdminDashboard},
	{Label: "Academic Years", Route: RouteAcademicYears},
	{Label: "Semesters", Route: RouteSemesters},
	{Label: "Programs", Route: RoutePrograms},
	{Label: "Courses", Route: RouteCourses},
	{Label: "Staff", Route: RouteStaffDirectory},
	{Label: "Students", Route: RouteStudents},
	{Label: "Staff Allocation", Route: RouteAllocations},
	{Label: "Certificates", Route: RouteCertificates},
}

var staffNav = []NavItem{
	{Label: "Dashboard", Route: RouteStaffDashboard},
	{Label: "My Courses", Route: RouteMyCourses},
	{Label: "Study Materials", Route: RouteMaterials},
	{Label: "Assignments", Route: RouteAssignments},
	{Label: "Quiz Questions", Route: RouteMCQs},
	{Label: "My Feedback", Route: RouteStaffFeedback},
	{Label: "Messages", Route: RouteInbox, Badge: badgeMessages},
}

var studentNav = []NavItem{
	{Label: "Dashboard", Route: RouteStudentDashboard},
	{Label: "My Courses", Route: RouteStudentCourses},
	{Label: "Enroll", Route: RouteEnroll},
	{Label: "Assignments", Route: RouteStudentAssignments},
	{Label: "Quizzes", Route: RouteQuizList},
	{Label: "Results", Route: RouteResults},
	{Label: "Messages", Route: RouteInbox, Badge: badgeMessages},
}

// NavItemsFor returns the sidebar list for a role.
func NavItemsFor(role api.Role) []NavItem {
	switch role {
	case api.RoleAdmin:
		return adminNav
	case api.RoleStaff:
		return staffNav
	case api.RoleStudent:
		return studentNav
	}
	return nil
}

func roleTitle(role api.Role) string {
	switch role {
	case api.RoleAdmin:
		return "Admin Panel"
	case api.RoleStaff:
		return "Staff Panel"
	case api.RoleStudent:
		return "Student Panel"
	}
	return ""
}

// RenderSidebar draws the role sidebar with the active route highlighted
// and badge counters applied.
func RenderSidebar(styles Styles, role api.Role, active Route, badges BadgeMsg, height int) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("LLS"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(roleTitle(role)))
	sb.WriteString("\n\n")

	for _, item := range NavItemsFor(role) {
		label := item.Label
		switch item.Badge {
		case badgeMessages:
			if badges.UnreadMessages > 0 {
				label = fmt.Sprintf("%s %s", label, styles.Badge.Render(badgeText(badges.UnreadMessages)))
			}
		case badgeNotifications:
			if badges.UnreadNotifications > 0 {
				label = fmt.Sprintf("%s %s", label, styles.Badge.Render(badgeText(badges.UnreadNotifications)))
			}
		}
		if item.Route == active {
			sb.WriteString(styles.NavItemActive.Render(label))
		} else {
			sb.WriteString(styles.NavItem.Render(label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("ctrl+l logout  ctrl+c quit"))

	return lipgloss.NewStyle().
		Width(SidebarWidth).
		Height(height).
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Theme.Border).
		Render(sb.String())
}

func badgeText(n int) string {
	if n > 99 {
		return "99+"
	}
	return fmt.Sprintf("%d", n)
}

// RenderHeader draws the shared header: page title on the left, the
// notification bell and user initials on the right.
func RenderHeader(styles Styles, title string, user api.Principal, badges BadgeMsg, width int) string {
	left := styles.Header.Render(" " + title + " ")

	bell := "🔔"
	if badges.UnreadNotifications > 0 {
		bell = fmt.Sprintf("🔔 %s", styles.Badge.Render(badgeText(badges.UnreadNotifications)))
	}
	right := fmt.Sprintf("%s  %s %s", bell, styles.Bold.Render(user.Initials()), styles.Muted.Render(user.FullName))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
