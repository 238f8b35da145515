package api

import (
	"context"
	"fmt"
	"strconv"
)

// ReportService maps the reporting endpoints used by the staff and admin
// dashboards.
type ReportService struct{ c *Client }

func (c *Client) Reports() *ReportService { return &ReportService{c} }

// StaffReport returns one staff member's workload summary.
func (s *ReportService) StaffReport(ctx context.Context, staffID int) (*StaffReport, error) {
	var out StaffReport
	if err := s.c.get(ctx, fmt.Sprintf("/reports/staff/%d", staffID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminStaffReport returns the workload summary for every staff member.
func (s *ReportService) AdminStaffReport(ctx context.Context) ([]StaffReport, error) {
	var out []StaffReport
	err := s.c.get(ctx, "/staff-report", &out)
	return out, err
}

// AdminCourseReport returns enrollment and content counts per course.
func (s *ReportService) AdminCourseReport(ctx context.Context) ([]CourseReport, error) {
	var out []CourseReport
	err := s.c.get(ctx, "/course-report", &out)
	return out, err
}

// ExamService maps the continuous-assessment (CCA) exam endpoints.
type ExamService struct{ c *Client }

func (c *Client) Exams() *ExamService { return &ExamService{c} }

// StudentsForCourse lists the course roster with each student's exam
// record attached.
func (s *ExamService) StudentsForCourse(ctx context.Context, courseID int) ([]ExamStudent, error) {
	var out []ExamStudent
	err := s.c.get(ctx, fmt.Sprintf("/exams/course/%d/students", courseID), &out)
	return out, err
}

// StudentCourseExam fetches one student's record for a course, with the
// student and course headers.
func (s *ExamService) StudentCourseExam(ctx context.Context, studentID, courseID int) (*StudentExamDetail, error) {
	var out StudentExamDetail
	if err := s.c.get(ctx, fmt.Sprintf("/exams/student/%d/course/%d", studentID, courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExamUpload upserts CCA marks and answer papers. Empty mark strings and
// nil files leave the stored values untouched.
type ExamUpload struct {
	StudentID int
	CourseID  int
	StaffID   int
	CCA1Marks string
	CCA2Marks string
	CCA1File  *FilePart // field cca1_file
	CCA2File  *FilePart // field cca2_file
}

func (u ExamUpload) fields() map[string]string {
	f := map[string]string{
		"student_id": strconv.Itoa(u.StudentID),
		"course_id":  strconv.Itoa(u.CourseID),
		"staff_id":   strconv.Itoa(u.StaffID),
	}
	if u.CCA1Marks != "" {
		f["cca1_marks"] = u.CCA1Marks
	}
	if u.CCA2Marks != "" {
		f["cca2_marks"] = u.CCA2Marks
	}
	return f
}

func (u ExamUpload) files() []FilePart {
	var files []FilePart
	if u.CCA1File != nil {
		files = append(files, *u.CCA1File)
	}
	if u.CCA2File != nil {
		files = append(files, *u.CCA2File)
	}
	return files
}

// Save creates or updates the student's exam record for the course.
func (s *ExamService) Save(ctx context.Context, u ExamUpload) error {
	return s.c.postMultipart(ctx, "POST", "/exams", u.fields(), u.files(), nil)
}

func (s *ExamService) Delete(ctx context.Context, examID int) error {
	return s.c.delete(ctx, fmt.Sprintf("/exams/%d", examID))
}

// FeedbackService maps the /feedback resource.
type FeedbackService struct{ c *Client }

func (c *Client) Feedbacks() *FeedbackService { return &FeedbackService{c} }

// SubmitFeedback is the student rating payload. Course and staff are
// each optional but the backend requires at least one of them.
type SubmitFeedback struct {
	StudentID    int    `json:"student_id"`
	CourseID     int    `json:"course_id,omitempty"`
	StaffID      int    `json:"staff_id,omitempty"`
	Rating       int    `json:"rating,omitempty"`
	FeedbackText string `json:"feedback_text"`
	IsAnonymous  bool   `json:"is_anonymous"`
}

func (s *FeedbackService) Submit(ctx context.Context, req SubmitFeedback) error {
	return s.c.postJSON(ctx, "/feedback", req, nil)
}

func (s *FeedbackService) List(ctx context.Context) ([]Feedback, error) {
	var out []Feedback
	err := s.c.get(ctx, "/feedback", &out)
	return out, err
}

// ByCourse returns a course's feedback with its running average rating.
func (s *FeedbackService) ByCourse(ctx context.Context, courseID int) (*FeedbackSummary, error) {
	var out FeedbackSummary
	if err := s.c.get(ctx, fmt.Sprintf("/feedback/course/%d", courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByStaff returns a staff member's feedback with its running average.
func (s *FeedbackService) ByStaff(ctx context.Context, staffID int) (*FeedbackSummary, error) {
	var out FeedbackSummary
	if err := s.c.get(ctx, fmt.Sprintf("/feedback/staff/%d", staffID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FeedbackService) ByStudent(ctx context.Context, studentID int) ([]Feedback, error) {
	var out []Feedback
	err := s.c.get(ctx, fmt.Sprintf("/feedback/student/%d", studentID), &out)
	return out, err
}
