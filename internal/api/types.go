package api

// Wire types mirror the backend's JSON field names exactly. Dates and
// timestamps stay strings; the client renders them, it never computes on
// them.

// Role of an authenticated principal.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleStudent
}

// Principal is the authenticated identity returned by login.
type Principal struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        Role   `json:"role"`
	StaffCode   string `json:"staff_code,omitempty"`
	StudentCode string `json:"student_code,omitempty"`
	ProgramID   int    `json:"program_id,omitempty"`
	SemesterID  int    `json:"semester_id,omitempty"`
}

// Initials derives the avatar initials shown in the header.
func (p Principal) Initials() string {
	initials := ""
	for _, part := range splitWords(p.FullName) {
		initials += string([]rune(part)[0:1])
		if len(initials) >= 2 {
			break
		}
	}
	if initials == "" && p.Email != "" {
		initials = string([]rune(p.Email)[0:1])
	}
	return initials
}

func splitWords(s string) []string {
	var out []string
	word := ""
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if word != "" {
				out = append(out, word)
				word = ""
			}
			continue
		}
		word += string(r)
	}
	if word != "" {
		out = append(out, word)
	}
	return out
}

type AcademicYear struct {
	ID        int    `json:"id"`
	YearName  string `json:"year_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Program struct {
	ID          int    `json:"id"`
	ProgramName string `json:"program_name"`
	ProgramCode string `json:"program_code"`
}

type Semester struct {
	ID           int    `json:"id"`
	SemesterName string `json:"semester_name"`
}

type Course struct {
	ID         int    `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	ProgramID  int    `json:"program_id"`
	SemesterID int    `json:"semester_id"`
}

type Staff struct {
	ID        int    `json:"id"`
	StaffCode string `json:"staff_code"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
}

type Student struct {
	ID             int    `json:"id"`
	StudentCode    string `json:"student_code"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	ProgramID      int    `json:"program_id"`
	SemesterID     int    `json:"semester_id"`
	EnrollmentDate string `json:"enrollment_date"`
}

type StaffCourse struct {
	ID             int    `json:"id"`
	StaffID        int    `json:"staff_id"`
	CourseID       int    `json:"course_id"`
	AcademicYearID int    `json:"academic_year_id"`
	AssignedDate   string `json:"assigned_date"`
}

type StudyMaterial struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	FilePath      string `json:"file_path"`
	FileType      string `json:"file_type"` // video, youtube, pdf, ppt
	ThumbnailPath string `json:"thumbnail_path"`
	StaffCourseID int    `json:"staff_course_id"`
	ParentID      int    `json:"parent_id"`
	UploadDate    string `json:"upload_date"`
}

type Assignment struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	CourseID        int     `json:"course_id"`
	StaffID         int     `json:"staff_id"`
	StudyMaterialID int     `json:"study_material_id"`
	DueDate         string  `json:"due_date"`
	MaxMarks        float64 `json:"max_marks"`
	FilePath        string  `json:"file_path"`
}

type Submission struct {
	ID             int     `json:"id"`
	AssignmentID   int     `json:"assignment_id"`
	StudentID      int     `json:"student_id"`
	FilePath       string  `json:"file_path"`
	SubmissionText string  `json:"submission_text"`
	SubmittedAt    string  `json:"submitted_at"`
	Status         string  `json:"status"`
	MarksObtained  float64 `json:"marks_obtained,omitempty"`
	Feedback       string  `json:"feedback,omitempty"`
}

// Question is one MCQ as served inside a quiz, including the client-side
// attempted flag the backend computes per student.
type Question struct {
	ID           int     `json:"id"`
	QuestionText string  `json:"question_text"`
	OptionA      string  `json:"option_a"`
	OptionB      string  `json:"option_b"`
	OptionC      string  `json:"option_c"`
	OptionD      string  `json:"option_d"`
	Marks        float64 `json:"marks"`
	CourseID     int     `json:"course_id"`
	StaffID      int     `json:"staff_id"`
	Attempted    bool    `json:"attempted"`
	// CorrectAnswer is only populated on staff-facing listings.
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// Option returns the text for option key "A".."D", empty if unset.
func (q Question) Option(key string) string {
	switch key {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// Quiz is the per-course or per-material quiz payload.
type Quiz struct {
	CourseID       int        `json:"course_id,omitempty"`
	MaterialID     int        `json:"material_id,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	AttemptedCount int        `json:"attempted_count"`
	Questions      []Question `json:"questions"`
}

// AttemptResult is the scoring response for one submitted answer.
type AttemptResult struct {
	ID            int     `json:"id"`
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer string  `json:"correct_answer"`
	MarksEarned   float64 `json:"marks_earned"`
}

type QuizResult struct {
	CourseID       int     `json:"course_id"`
	CourseName     string  `json:"course_name"`
	TotalQuestions int     `json:"total_questions"`
	AttemptedCount int     `json:"attempted_count"`
	CorrectCount   int     `json:"correct_count"`
	MarksEarned    float64 `json:"marks_earned"`
	TotalMarks     float64 `json:"total_marks"`
}

type Result struct {
	ID              int     `json:"id"`
	StudentID       int     `json:"student_id"`
	CourseID        int     `json:"course_id"`
	CourseName      string  `json:"course_name"`
	SemesterID      int     `json:"semester_id"`
	AssignmentMarks float64 `json:"assignment_marks"`
	MCQMarks        float64 `json:"mcq_marks"`
	TotalMarks      float64 `json:"total_marks"`
	Grade           string  `json:"grade"`
}

type Message struct {
	ID           int    `json:"id"`
	SenderType   string `json:"sender_type"`
	SenderID     int    `json:"sender_id"`
	SenderName   string `json:"sender_name,omitempty"`
	ReceiverType string `json:"receiver_type"`
	ReceiverID   int    `json:"receiver_id"`
	ReceiverName string `json:"receiver_name,omitempty"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	IsRead       bool   `json:"is_read"`
	SentAt       string `json:"sent_at"`
	ReadAt       string `json:"read_at,omitempty"`
}

type Notification struct {
	ID               int    `json:"id"`
	UserType         string `json:"user_type"`
	UserID           int    `json:"user_id"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`
	ReferenceType    string `json:"reference_type"`
	ReferenceID      int    `json:"reference_id"`
	IsRead           bool   `json:"is_read"`
	CreatedAt        string `json:"created_at"`
}

type CertificateLayout struct {
	ID              int    `json:"id"`
	LayoutName      string `json:"layout_name"`
	TemplateContent string `json:"template_content"`
	BackgroundImage string `json:"background_image"`
	ProgramID       int    `json:"program_id"`
	IsDefault       bool   `json:"is_default"`
}

// Feedback carries the resolved names the backend joins in. StudentName
// reads "Anonymous" when the author hid themselves.
type Feedback struct {
	ID           int    `json:"id"`
	StudentID    int    `json:"student_id"`
	StudentName  string `json:"student_name"`
	CourseID     int    `json:"course_id"`
	CourseName   string `json:"course_name"`
	StaffID      int    `json:"staff_id"`
	StaffName    string `json:"staff_name"`
	Rating       int    `json:"rating"`
	FeedbackText string `json:"feedback_text"`
	IsAnonymous  bool   `json:"is_anonymous"`
	SubmittedAt  string `json:"submitted_at"`
}

// FeedbackSummary is the per-course and per-staff feedback envelope.
type FeedbackSummary struct {
	Feedbacks     []Feedback `json:"feedbacks"`
	TotalCount    int        `json:"total_count"`
	AverageRating float64    `json:"average_rating"`
}

// ExamMarks is one student's continuous-assessment record for a course.
// Marks are pointers: nil means not yet entered.
type ExamMarks struct {
	ID           int      `json:"id"`
	CCA1Marks    *float64 `json:"cca1_marks"`
	CCA1FilePath string   `json:"cca1_file_path"`
	CCA2Marks    *float64 `json:"cca2_marks"`
	CCA2FilePath string   `json:"cca2_file_path"`
}

// ExamStudent is a course roster row with the exam record attached when
// one exists.
type ExamStudent struct {
	ID          int        `json:"id"`
	StudentCode string     `json:"student_code"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Exam        *ExamMarks `json:"exam"`
}

// StudentExamDetail is a single student's exam record with the student
// and course summaries the form header shows.
type StudentExamDetail struct {
	Student Student    `json:"student"`
	Course  Course     `json:"course"`
	Exam    *ExamMarks `json:"exam"`
}

// StudentDashboard is the aggregate the student home screen renders.
type StudentDashboard struct {
	EnrolledCourses   int     `json:"enrolled_courses"`
	PendingAssignment int     `json:"pending_assignments"`
	CompletedQuizzes  int     `json:"completed_quizzes"`
	AverageGrade      float64 `json:"average_grade"`
}

// StaffReport summarizes one staff member's workload.
type StaffReport struct {
	StaffID          int    `json:"staff_id"`
	StaffName        string `json:"staff_name"`
	CourseCount      int    `json:"course_count"`
	MaterialCount    int    `json:"material_count"`
	AssignmentCount  int    `json:"assignment_count"`
	PendingGradeWork int    `json:"pending_evaluations"`
}

// CourseReport summarizes enrollment and content per course.
type CourseReport struct {
	CourseID        int    `json:"course_id"`
	CourseName      string `json:"course_name"`
	StudentCount    int    `json:"student_count"`
	MaterialCount   int    `json:"material_count"`
	AssignmentCount int    `json:"assignment_count"`
}

// UnreadCount is the polled badge payload.
type UnreadCount struct {
	UnreadCount int `json:"unread_count"`
}
