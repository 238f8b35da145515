package ui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// This file declares every plain CRUD screen as a ListConfig or FormConfig
// instance. Screens with their own behavior (dashboards, quiz player,
// inbox) live in their own files.

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func requireAll(values map[string]string, names ...string) string {
	for _, n := range names {
		if values[n] == "" {
			return "All fields are required"
		}
	}
	return ""
}

func parseID(values map[string]string, name string) (int, bool) {
	n, err := strconv.Atoi(values[name])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// openUpload resolves an optional local file path into a multipart part.
// The file is read up front so no descriptor outlives the request.
func openUpload(path string) (*api.FilePart, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &api.FilePart{Field: "file", Filename: filepath.Base(path), Content: bytes.NewReader(data)}, nil
}

// --- admin: academic years ---

func buildAcademicYearList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Academic Years",
		Headers:   []string{"ID", "Year", "Start", "End"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			years, err := a.client.AcademicYears().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(years))
			for _, y := range years {
				rows = append(rows, ListRow{ID: y.ID, Cells: []string{strconv.Itoa(y.ID), y.YearName, y.StartDate, y.EndDate}})
			}
			return rows, nil
		},
		Delete:   a.client.AcademicYears().Delete,
		NewRoute: RouteAcademicYearNew,
	})
}

func buildAcademicYearForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Academic Year",
		Fields: []FormField{
			{Name: "year_name", Label: "Year name", Placeholder: "2025-2026"},
			{Name: "start_date", Label: "Start date", Placeholder: "YYYY-MM-DD"},
			{Name: "end_date", Label: "End date", Placeholder: "YYYY-MM-DD"},
		},
		Validate: func(v map[string]string) string {
			return requireAll(v, "year_name", "start_date", "end_date")
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			return a.client.AcademicYears().Create(ctx, api.CreateAcademicYear{
				YearName:  v["year_name"],
				StartDate: v["start_date"],
				EndDate:   v["end_date"],
			})
		},
		SuccessText:  "Academic year created",
		SuccessRoute: RouteAcademicYears,
	})
}

// --- admin: semesters ---

func buildSemesterList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Semesters",
		Headers:   []string{"ID", "Name"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			sems, err := a.client.Semesters().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(sems))
			for _, s := range sems {
				rows = append(rows, ListRow{ID: s.ID, Cells: []string{strconv.Itoa(s.ID), s.SemesterName}})
			}
			return rows, nil
		},
		Delete:   a.client.Semesters().Delete,
		NewRoute: RouteSemesterNew,
	})
}

func buildSemesterForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Semester",
		Fields: []FormField{
			{Name: "semester_name", Label: "Semester name", Placeholder: "Semester 1"},
		},
		Validate: func(v map[string]string) string { return requireAll(v, "semester_name") },
		Submit: func(ctx context.Context, v map[string]string) error {
			return a.client.Semesters().Create(ctx, v["semester_name"])
		},
		SuccessText:  "Semester created",
		SuccessRoute: RouteSemesters,
	})
}

// --- admin: programs ---

func buildProgramList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Programs",
		Headers:   []string{"ID", "Code", "Name"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			progs, err := a.client.Programs().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(progs))
			for _, p := range progs {
				rows = append(rows, ListRow{ID: p.ID, Cells: []string{strconv.Itoa(p.ID), p.ProgramCode, p.ProgramName}})
			}
			return rows, nil
		},
		Delete:   a.client.Programs().Delete,
		NewRoute: RouteProgramNew,
	})
}

func buildProgramForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Program",
		Fields: []FormField{
			{Name: "program_name", Label: "Program name", Placeholder: "German A1"},
			{Name: "program_code", Label: "Program code", Placeholder: "GER-A1"},
		},
		Validate: func(v map[string]string) string { return requireAll(v, "program_name", "program_code") },
		Submit: func(ctx context.Context, v map[string]string) error {
			return a.client.Programs().Create(ctx, api.CreateProgram{
				ProgramName: v["program_name"],
				ProgramCode: v["program_code"],
			})
		},
		SuccessText:  "Program created",
		SuccessRoute: RoutePrograms,
	})
}

// --- admin: courses ---

func buildCourseList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Courses",
		Headers:   []string{"ID", "Code", "Name", "Program", "Semester"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			courses, err := a.client.Courses().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(courses))
			for _, c := range courses {
				rows = append(rows, ListRow{ID: c.ID, Cells: []string{
					strconv.Itoa(c.ID), c.CourseCode, c.CourseName,
					strconv.Itoa(c.ProgramID), strconv.Itoa(c.SemesterID),
				}})
			}
			return rows, nil
		},
		Delete:   a.client.Courses().Delete,
		NewRoute: RouteCourseNew,
	})
}

func buildCourseForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Course",
		Fields: []FormField{
			{Name: "course_code", Label: "Course code", Placeholder: "GER-A1-01"},
			{Name: "course_name", Label: "Course name", Placeholder: "Basic Grammar"},
			{Name: "program_id", Label: "Program ID", Placeholder: "numeric id"},
			{Name: "semester_id", Label: "Semester ID", Placeholder: "numeric id"},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "course_code", "course_name", "program_id", "semester_id"); msg != "" {
				return msg
			}
			if _, ok := parseID(v, "program_id"); !ok {
				return "Program ID must be a positive number"
			}
			if _, ok := parseID(v, "semester_id"); !ok {
				return "Semester ID must be a positive number"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			programID, _ := parseID(v, "program_id")
			semesterID, _ := parseID(v, "semester_id")
			return a.client.Courses().Create(ctx, api.CreateCourse{
				CourseCode: v["course_code"],
				CourseName: v["course_name"],
				ProgramID:  programID,
				SemesterID: semesterID,
			})
		},
		SuccessText:  "Course created",
		SuccessRoute: RouteCourses,
	})
}

// --- admin: staff ---

func buildStaffList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Staff",
		Headers:   []string{"ID", "Code", "Name", "Email"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			staff, err := a.client.Staff().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(staff))
			for _, st := range staff {
				rows = append(rows, ListRow{ID: st.ID, Cells: []string{strconv.Itoa(st.ID), st.StaffCode, st.FullName, st.Email}})
			}
			return rows, nil
		},
		Delete:   a.client.Staff().Delete,
		NewRoute: RouteStaffNew,
	})
}

func buildStaffForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Staff Member",
		Fields: []FormField{
			{Name: "staff_code", Label: "Staff code", Placeholder: "STF001"},
			{Name: "username", Label: "Username"},
			{Name: "email", Label: "Email"},
			{Name: "full_name", Label: "Full name"},
			{Name: "password", Label: "Password", Secret: true},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "staff_code", "username", "email", "full_name", "password"); msg != "" {
				return msg
			}
			if !emailRx.MatchString(v["email"]) {
				return "Please enter a valid email address"
			}
			if len(v["password"]) < 6 {
				return "Password must be at least 6 characters"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			return a.client.Staff().Create(ctx, api.CreateStaff{
				StaffCode: v["staff_code"],
				Username:  v["username"],
				Email:     v["email"],
				FullName:  v["full_name"],
				Password:  v["password"],
			})
		},
		SuccessText:  "Staff member created",
		SuccessRoute: RouteStaffDirectory,
	})
}

// --- admin: students ---

func buildStudentList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Students",
		Headers:   []string{"ID", "Code", "Name", "Email", "Program"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			students, err := a.client.Students().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(students))
			for _, st := range students {
				rows = append(rows, ListRow{ID: st.ID, Cells: []string{
					strconv.Itoa(st.ID), st.StudentCode, st.FullName, st.Email, strconv.Itoa(st.ProgramID),
				}})
			}
			return rows, nil
		},
		Delete:   a.client.Students().Delete,
		NewRoute: RouteStudentNew,
	})
}

func buildStudentForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Student",
		Fields: []FormField{
			{Name: "student_code", Label: "Student code", Placeholder: "STU001"},
			{Name: "username", Label: "Username"},
			{Name: "email", Label: "Email"},
			{Name: "full_name", Label: "Full name"},
			{Name: "password", Label: "Password", Secret: true},
			{Name: "program_id", Label: "Program ID", Placeholder: "numeric id"},
			{Name: "semester_id", Label: "Semester ID", Placeholder: "numeric id"},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "student_code", "username", "email", "full_name", "password", "program_id", "semester_id"); msg != "" {
				return msg
			}
			if !emailRx.MatchString(v["email"]) {
				return "Please enter a valid email address"
			}
			if len(v["password"]) < 6 {
				return "Password must be at least 6 characters"
			}
			if _, ok := parseID(v, "program_id"); !ok {
				return "Program ID must be a positive number"
			}
			if _, ok := parseID(v, "semester_id"); !ok {
				return "Semester ID must be a positive number"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			programID, _ := parseID(v, "program_id")
			semesterID, _ := parseID(v, "semester_id")
			return a.client.Students().Create(ctx, api.CreateStudent{
				StudentCode: v["student_code"],
				Username:    v["username"],
				Email:       v["email"],
				FullName:    v["full_name"],
				Password:    v["password"],
				ProgramID:   programID,
				SemesterID:  semesterID,
			})
		},
		SuccessText:  "Student created",
		SuccessRoute: RouteStudents,
	})
}

// --- admin: staff allocation ---

func buildAllocationList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Staff Allocation",
		Headers:   []string{"ID", "Staff", "Course", "Year", "Assigned"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			allocs, err := a.client.StaffCourses().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(allocs))
			for _, al := range allocs {
				rows = append(rows, ListRow{ID: al.ID, Cells: []string{
					strconv.Itoa(al.ID), strconv.Itoa(al.StaffID), strconv.Itoa(al.CourseID),
					strconv.Itoa(al.AcademicYearID), al.AssignedDate,
				}})
			}
			return rows, nil
		},
		Delete:   a.client.StaffCourses().Delete,
		NewRoute: RouteAllocationNew,
	})
}

func buildAllocationForm(a *App, _ int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "Allocate Course",
		Fields: []FormField{
			{Name: "staff_id", Label: "Staff ID", Placeholder: "numeric id"},
			{Name: "course_id", Label: "Course ID", Placeholder: "numeric id"},
			{Name: "academic_year_id", Label: "Academic Year ID", Placeholder: "numeric id"},
		},
		Validate: func(v map[string]string) string {
			for _, n := range []string{"staff_id", "course_id", "academic_year_id"} {
				if _, ok := parseID(v, n); !ok {
					return "All IDs must be positive numbers"
				}
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			staffID, _ := parseID(v, "staff_id")
			courseID, _ := parseID(v, "course_id")
			yearID, _ := parseID(v, "academic_year_id")
			return a.client.StaffCourses().Create(ctx, api.CreateStaffCourse{
				StaffID:        staffID,
				CourseID:       courseID,
				AcademicYearID: yearID,
			})
		},
		SuccessText:  "Course allocated",
		SuccessRoute: RouteAllocations,
	})
}

// --- admin: certificate layouts ---

func buildCertificateList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Certificate Layouts",
		Headers:   []string{"ID", "Name", "Program", "Default"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			layouts, err := a.client.Certificates().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(layouts))
			for _, l := range layouts {
				def := ""
				if l.IsDefault {
					def = "yes"
				}
				rows = append(rows, ListRow{ID: l.ID, Cells: []string{
					strconv.Itoa(l.ID), l.LayoutName, strconv.Itoa(l.ProgramID), def,
				}})
			}
			return rows, nil
		},
		Delete:    a.client.Certificates().Delete,
		EmptyText: "No certificate layouts yet. Layouts are designed in the web client.",
	})
}

// --- staff: materials ---

func buildVideoForm(a *App, courseID int) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "Add Material",
		Fields: []FormField{
			{Name: "title", Label: "Title"},
			{Name: "description", Label: "Description"},
			{Name: "file_type", Label: "Type", Placeholder: "video | youtube | pdf | ppt"},
			{Name: "link_url", Label: "YouTube URL", Placeholder: "youtube type only"},
			{Name: "file", Label: "File path", Placeholder: "local file, empty for youtube"},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "title", "file_type"); msg != "" {
				return "Title and type are required"
			}
			switch v["file_type"] {
			case "youtube":
				if v["link_url"] == "" {
					return "YouTube materials need a URL"
				}
			case "video", "pdf", "ppt":
				if v["file"] == "" {
					return "This material type needs a file path"
				}
			default:
				return "Type must be video, youtube, pdf or ppt"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			part, err := openUpload(v["file"])
			if err != nil {
				return err
			}
			return a.client.StudyMaterials().AddToCourse(ctx, courseID, api.MaterialUpload{
				Title:       v["title"],
				Description: v["description"],
				FileType:    v["file_type"],
				LinkURL:     v["link_url"],
				File:        part,
			})
		},
		SuccessText:  "Material added",
		SuccessRoute: RouteCourseVideos,
		SuccessArg:   courseID,
	})
}

// --- student: course feedback ---

func buildFeedbackForm(a *App, courseID int) Page {
	studentID := 0
	if p := a.principal(); p != nil {
		studentID = p.ID
	}
	return NewFormPage(a, FormConfig{
		PageTitle: "Course Feedback",
		Fields: []FormField{
			{Name: "rating", Label: "Rating", Placeholder: "1-5"},
			{Name: "feedback_text", Label: "Feedback"},
			{Name: "staff_id", Label: "Staff ID", Placeholder: "optional numeric id"},
			{Name: "anonymous", Label: "Anonymous", Placeholder: "yes | no"},
		},
		Validate: func(v map[string]string) string {
			if v["feedback_text"] == "" {
				return "Feedback text is required"
			}
			rating, err := strconv.Atoi(v["rating"])
			if err != nil || rating < 1 || rating > 5 {
				return "Rating must be between 1 and 5"
			}
			if v["staff_id"] != "" {
				if _, ok := parseID(v, "staff_id"); !ok {
					return "Staff ID must be a positive number"
				}
			}
			switch v["anonymous"] {
			case "", "yes", "no":
			default:
				return "Anonymous must be yes or no"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			rating, _ := strconv.Atoi(v["rating"])
			staffID, _ := parseID(v, "staff_id")
			return a.client.Feedbacks().Submit(ctx, api.SubmitFeedback{
				StudentID:    studentID,
				CourseID:     courseID,
				StaffID:      staffID,
				Rating:       rating,
				FeedbackText: v["feedback_text"],
				IsAnonymous:  v["anonymous"] == "yes",
			})
		},
		SuccessText:  "Feedback submitted",
		SuccessRoute: RouteStudentCourses,
	})
}

func buildMaterialList(a *App, _ int) Page {
	return NewListPage(a, ListConfig{
		PageTitle: "Study Materials",
		Headers:   []string{"ID", "Title", "Type", "Uploaded"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			materials, err := a.client.StudyMaterials().List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(materials))
			for _, m := range materials {
				rows = append(rows, ListRow{ID: m.ID, Cells: []string{
					strconv.Itoa(m.ID), truncate(m.Title, 40), m.FileType, m.UploadDate,
				}})
			}
			return rows, nil
		},
		Delete:    a.client.StudyMaterials().Delete,
		EmptyText: "No materials uploaded yet. Add them from a course page.",
	})
}

// --- staff: assignments ---

func buildAssignmentList(a *App, _ int) Page {
	staffID := 0
	if p := a.principal(); p != nil {
		staffID = p.ID
	}
	return NewListPage(a, ListConfig{
		PageTitle: "Assignments",
		Headers:   []string{"ID", "Title", "Course", "Due", "Marks"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			assignments, err := a.client.Assignments().List(ctx, api.AssignmentFilter{StaffID: staffID})
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(assignments))
			for _, as := range assignments {
				rows = append(rows, ListRow{ID: as.ID, Cells: []string{
					strconv.Itoa(as.ID), truncate(as.Title, 32), strconv.Itoa(as.CourseID),
					as.DueDate, strconv.FormatFloat(as.MaxMarks, 'f', -1, 64),
				}})
			}
			return rows, nil
		},
		Delete:    a.client.Assignments().Delete,
		NewRoute:  RouteAssignmentNew,
		OpenRoute: RouteSubmissions,
		EmptyText: "No assignments yet. Press n to create one.",
	})
}

func buildAssignmentForm(a *App, _ int) Page {
	staffID := 0
	if p := a.principal(); p != nil {
		staffID = p.ID
	}
	return NewFormPage(a, FormConfig{
		PageTitle: "New Assignment",
		Fields: []FormField{
			{Name: "title", Label: "Title"},
			{Name: "description", Label: "Description"},
			{Name: "course_id", Label: "Course ID", Placeholder: "numeric id"},
			{Name: "due_date", Label: "Due date", Placeholder: "YYYY-MM-DD"},
			{Name: "max_marks", Label: "Max marks", Placeholder: "100"},
			{Name: "file", Label: "Attachment path", Placeholder: "optional"},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "title", "course_id", "due_date", "max_marks"); msg != "" {
				return "Title, course, due date and max marks are required"
			}
			if _, ok := parseID(v, "course_id"); !ok {
				return "Course ID must be a positive number"
			}
			if marks, err := strconv.ParseFloat(v["max_marks"], 64); err != nil || marks <= 0 {
				return "Max marks must be a positive number"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			part, err := openUpload(v["file"])
			if err != nil {
				return err
			}
			courseID, _ := parseID(v, "course_id")
			return a.client.Assignments().Create(ctx, api.AssignmentUpload{
				Title:       v["title"],
				Description: v["description"],
				CourseID:    courseID,
				StaffID:     staffID,
				DueDate:     v["due_date"],
				MaxMarks:    v["max_marks"],
				File:        part,
			})
		},
		SuccessText:  "Assignment created",
		SuccessRoute: RouteAssignments,
	})
}

// --- staff: quiz questions ---

func buildMCQList(a *App, _ int) Page {
	staffID := 0
	if p := a.principal(); p != nil {
		staffID = p.ID
	}
	return NewListPage(a, ListConfig{
		PageTitle: "Quiz Questions",
		Headers:   []string{"ID", "Question", "Course", "Answer", "Marks"},
		Load: func(ctx context.Context) ([]ListRow, error) {
			questions, err := a.client.MCQs().List(ctx, api.MCQFilter{StaffID: staffID})
			if err != nil {
				return nil, err
			}
			rows := make([]ListRow, 0, len(questions))
			for _, q := range questions {
				rows = append(rows, ListRow{ID: q.ID, Cells: []string{
					strconv.Itoa(q.ID), truncate(q.QuestionText, 40), strconv.Itoa(q.CourseID),
					q.CorrectAnswer, strconv.FormatFloat(q.Marks, 'f', -1, 64),
				}})
			}
			return rows, nil
		},
		Delete:    a.client.MCQs().Delete,
		NewRoute:  RouteMCQNew,
		EmptyText: "No quiz questions yet. Press n to add one.",
	})
}

func buildMCQForm(a *App, _ int) Page {
	staffID := 0
	if p := a.principal(); p != nil {
		staffID = p.ID
	}
	return NewFormPage(a, FormConfig{
		PageTitle: "New Quiz Question",
		Fields: []FormField{
			{Name: "question_text", Label: "Question"},
			{Name: "option_a", Label: "Option A"},
			{Name: "option_b", Label: "Option B"},
			{Name: "option_c", Label: "Option C", Placeholder: "optional"},
			{Name: "option_d", Label: "Option D", Placeholder: "optional"},
			{Name: "correct_answer", Label: "Correct answer", Placeholder: "A | B | C | D"},
			{Name: "marks", Label: "Marks", Placeholder: "1"},
			{Name: "course_id", Label: "Course ID", Placeholder: "numeric id"},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "question_text", "option_a", "option_b", "correct_answer", "marks", "course_id"); msg != "" {
				return "Question, options A and B, answer, marks and course are required"
			}
			answer := strings.ToUpper(v["correct_answer"])
			if answer != "A" && answer != "B" && answer != "C" && answer != "D" {
				return "Correct answer must be A, B, C or D"
			}
			if (answer == "C" && v["option_c"] == "") || (answer == "D" && v["option_d"] == "") {
				return "The correct answer points at an empty option"
			}
			if marks, err := strconv.ParseFloat(v["marks"], 64); err != nil || marks <= 0 {
				return "Marks must be a positive number"
			}
			if _, ok := parseID(v, "course_id"); !ok {
				return "Course ID must be a positive number"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			marks, _ := strconv.ParseFloat(v["marks"], 64)
			courseID, _ := parseID(v, "course_id")
			return a.client.MCQs().Create(ctx, api.MCQUpload{
				QuestionText:  v["question_text"],
				OptionA:       v["option_a"],
				OptionB:       v["option_b"],
				OptionC:       v["option_c"],
				OptionD:       v["option_d"],
				CorrectAnswer: strings.ToUpper(v["correct_answer"]),
				Marks:         marks,
				CourseID:      courseID,
				StaffID:       staffID,
			})
		},
		SuccessText:  "Question created",
		SuccessRoute: RouteMCQs,
	})
}
