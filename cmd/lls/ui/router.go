package ui

import (
	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// Route table. Paths mirror the web client so deep links and log lines
// read the same across both clients.
const (
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"

	RouteAdminDashboard  Route = "/admin"
	RouteAcademicYears   Route = "/admin/academic-years"
	RouteAcademicYearNew Route = "/admin/academic-years/new"
	RouteSemesters       Route = "/admin/semesters"
	RouteSemesterNew     Route = "/admin/semesters/new"
	RoutePrograms        Route = "/admin/programs"
	RouteProgramNew      Route = "/admin/programs/new"
	RouteCourses         Route = "/admin/courses"
	RouteCourseNew       Route = "/admin/courses/new"
	RouteStaffDirectory  Route = "/admin/staff"
	RouteStaffNew        Route = "/admin/staff/new"
	RouteStudents        Route = "/admin/students"
	RouteStudentNew      Route = "/admin/students/new"
	RouteAllocations     Route = "/admin/staff-allocation"
	RouteAllocationNew   Route = "/admin/staff-allocation/new"
	RouteCertificates    Route = "/admin/certificates"

	RouteStaffDashboard Route = "/staff"
	RouteMyCourses      Route = "/staff/my-courses"
	RouteCourseVideos   Route = "/staff/course/%d/videos"
	RouteVideoNew       Route = "/staff/course/%d/videos/new"
	RouteMaterials      Route = "/staff/materials"
	RouteAssignments    Route = "/staff/assignments"
	RouteAssignmentNew  Route = "/staff/assignments/new"
	RouteSubmissions    Route = "/staff/assignments/%d/submissions"
	RouteMCQs           Route = "/staff/mcqs"
	RouteMCQNew         Route = "/staff/mcqs/new"
	RouteExamStudents   Route = "/staff/exam/%d/students"
	RouteStaffFeedback  Route = "/staff/feedback"

	RouteStudentDashboard   Route = "/student"
	RouteStudentCourses     Route = "/student/courses"
	RouteCourseMaterials    Route = "/student/courses/%d"
	RouteEnroll             Route = "/student/enroll"
	RouteResults            Route = "/student/results"
	RouteStudentAssignments Route = "/student/assignments"
	RouteSubmit             Route = "/student/assignments/submit/%d"
	RouteQuizList           Route = "/student/quiz"
	RouteQuizPlayer         Route = "/student/quiz/%d"
	RouteQuizResults        Route = "/student/quiz/results"
	RouteFeedbackNew        Route = "/student/courses/%d/feedback"

	RouteInbox   Route = "/messages"
	RouteCompose Route = "/messages/new"
	RouteMessage Route = "/messages/%d"
)

// routeDef binds a route to the roles that may reach it and the page
// constructor. Empty roles means public.
type routeDef struct {
	roles []api.Role
	build func(a *App, arg int) Page
}

func allRoles() []api.Role {
	return []api.Role{api.RoleAdmin, api.RoleStaff, api.RoleStudent}
}

// routeDefs is consulted by the guard on every navigation.
var routeDefs = map[Route]routeDef{
	RouteLogin:    {build: func(a *App, _ int) Page { return NewLoginPage(a) }},
	RouteRegister: {build: func(a *App, _ int) Page { return NewRegisterPage(a) }},

	RouteAdminDashboard: {roles: []api.Role{api.RoleAdmin}, build: func(a *App, _ int) Page { return NewAdminDashboardPage(a) }},
	RouteAcademicYears:  {roles: []api.Role{api.RoleAdmin}, build: buildAcademicYearList},
	RouteAcademicYearNew: {roles: []api.Role{api.RoleAdmin},
		build: buildAcademicYearForm},
	RouteSemesters:      {roles: []api.Role{api.RoleAdmin}, build: buildSemesterList},
	RouteSemesterNew:    {roles: []api.Role{api.RoleAdmin}, build: buildSemesterForm},
	RoutePrograms:       {roles: []api.Role{api.RoleAdmin}, build: buildProgramList},
	RouteProgramNew:     {roles: []api.Role{api.RoleAdmin}, build: buildProgramForm},
	RouteCourses:        {roles: []api.Role{api.RoleAdmin}, build: buildCourseList},
	RouteCourseNew:      {roles: []api.Role{api.RoleAdmin}, build: buildCourseForm},
	RouteStaffDirectory: {roles: []api.Role{api.RoleAdmin}, build: buildStaffList},
	RouteStaffNew:       {roles: []api.Role{api.RoleAdmin}, build: buildStaffForm},
	RouteStudents:       {roles: []api.Role{api.RoleAdmin}, build: buildStudentList},
	RouteStudentNew:     {roles: []api.Role{api.RoleAdmin}, build: buildStudentForm},
	RouteAllocations:    {roles: []api.Role{api.RoleAdmin}, build: buildAllocationList},
	RouteAllocationNew:  {roles: []api.Role{api.RoleAdmin}, build: buildAllocationForm},
	RouteCertificates:   {roles: []api.Role{api.RoleAdmin}, build: buildCertificateList},

	RouteStaffDashboard: {roles: []api.Role{api.RoleStaff}, build: func(a *App, _ int) Page { return NewStaffDashboardPage(a) }},
	RouteMyCourses:      {roles: []api.Role{api.RoleStaff}, build: func(a *App, _ int) Page { return NewMyCoursesPage(a) }},
	RouteCourseVideos:   {roles: []api.Role{api.RoleStaff}, build: func(a *App, arg int) Page { return NewCourseVideosPage(a, arg) }},
	RouteVideoNew:       {roles: []api.Role{api.RoleStaff}, build: buildVideoForm},
	RouteMaterials:      {roles: []api.Role{api.RoleStaff}, build: buildMaterialList},
	RouteAssignments:    {roles: []api.Role{api.RoleStaff}, build: buildAssignmentList},
	RouteAssignmentNew:  {roles: []api.Role{api.RoleStaff}, build: buildAssignmentForm},
	RouteSubmissions:    {roles: []api.Role{api.RoleStaff}, build: func(a *App, arg int) Page { return NewSubmissionsPage(a, arg) }},
	RouteMCQs:           {roles: []api.Role{api.RoleStaff}, build: buildMCQList},
	RouteMCQNew:         {roles: []api.Role{api.RoleStaff}, build: buildMCQForm},
	RouteExamStudents:   {roles: []api.Role{api.RoleStaff}, build: func(a *App, arg int) Page { return NewExamsPage(a, arg) }},
	RouteStaffFeedback:  {roles: []api.Role{api.RoleStaff}, build: func(a *App, _ int) Page { return NewStaffFeedbackPage(a) }},

	RouteStudentDashboard:   {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewStudentDashboardPage(a) }},
	RouteStudentCourses:     {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewStudentCoursesPage(a) }},
	RouteCourseMaterials:    {roles: []api.Role{api.RoleStudent}, build: func(a *App, arg int) Page { return NewCourseMaterialsPage(a, arg) }},
	RouteEnroll:             {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewEnrollPage(a) }},
	RouteResults:            {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewResultsPage(a) }},
	RouteStudentAssignments: {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewStudentAssignmentsPage(a) }},
	RouteSubmit:             {roles: []api.Role{api.RoleStudent}, build: func(a *App, arg int) Page { return NewSubmitPage(a, arg) }},
	RouteQuizList:           {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewQuizListPage(a) }},
	RouteQuizPlayer:         {roles: []api.Role{api.RoleStudent}, build: func(a *App, arg int) Page { return NewQuizPage(a, arg) }},
	RouteQuizResults:        {roles: []api.Role{api.RoleStudent}, build: func(a *App, _ int) Page { return NewQuizResultsPage(a) }},
	RouteFeedbackNew:        {roles: []api.Role{api.RoleStudent}, build: buildFeedbackForm},

	RouteInbox:   {roles: allRoles(), build: func(a *App, _ int) Page { return NewInboxPage(a) }},
	RouteCompose: {roles: allRoles(), build: func(a *App, _ int) Page { return NewComposePage(a) }},
	RouteMessage: {roles: allRoles(), build: func(a *App, arg int) Page { return NewMessagePage(a, arg) }},
}

// DashboardRoute returns the landing route for a role.
func DashboardRoute(role api.Role) Route {
	switch role {
	case api.RoleAdmin:
		return RouteAdminDashboard
	case api.RoleStaff:
		return RouteStaffDashboard
	case api.RoleStudent:
		return RouteStudentDashboard
	}
	return RouteLogin
}

// Resolve guards a navigation request. It returns the route that should
// actually be mounted: the requested one when allowed, the principal's own
// dashboard when the role does not match, or the login route when
// anonymous. The second return is false when the request was denied.
func Resolve(req Route, principal *api.Principal) (Route, bool) {
	def, ok := routeDefs[req]
	if !ok {
		if principal != nil {
			return DashboardRoute(principal.Role), false
		}
		return RouteLogin, false
	}
	if len(def.roles) == 0 {
		return req, true
	}
	if principal == nil {
		return RouteLogin, false
	}
	for _, r := range def.roles {
		if r == principal.Role {
			return req, true
		}
	}
	return DashboardRoute(principal.Role), false
}
