package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AssignmentService maps the /assignments resource. Create and Update are
// multipart because an assignment may carry an attachment.
type AssignmentService struct{ c *Client }

func (c *Client) Assignments() *AssignmentService { return &AssignmentService{c} }

// AssignmentFilter narrows List. Zero values are omitted.
type AssignmentFilter struct {
	CourseID        int
	StaffID         int
	StudyMaterialID int
}

func (f AssignmentFilter) query() string {
	q := url.Values{}
	if f.CourseID > 0 {
		q.Set("course_id", strconv.Itoa(f.CourseID))
	}
	if f.StaffID > 0 {
		q.Set("staff_id", strconv.Itoa(f.StaffID))
	}
	if f.StudyMaterialID > 0 {
		q.Set("study_material_id", strconv.Itoa(f.StudyMaterialID))
	}
	if enc := q.Encode(); enc != "" {
		return "?" + enc
	}
	return ""
}

func (s *AssignmentService) List(ctx context.Context, f AssignmentFilter) ([]Assignment, error) {
	var out []Assignment
	err := s.c.get(ctx, "/assignments"+f.query(), &out)
	return out, err
}

func (s *AssignmentService) Get(ctx context.Context, id int) (*Assignment, error) {
	var out Assignment
	if err := s.c.get(ctx, fmt.Sprintf("/assignments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignmentUpload is the create/update form payload.
type AssignmentUpload struct {
	Title           string
	Description     string
	CourseID        int
	StaffID         int
	StudyMaterialID int
	DueDate         string
	MaxMarks        string
	File            *FilePart
}

func (u AssignmentUpload) fields() map[string]string {
	f := map[string]string{
		"title":       u.Title,
		"description": u.Description,
		"course_id":   strconv.Itoa(u.CourseID),
		"staff_id":    strconv.Itoa(u.StaffID),
		"due_date":    u.DueDate,
		"max_marks":   u.MaxMarks,
	}
	if u.StudyMaterialID > 0 {
		f["study_material_id"] = strconv.Itoa(u.StudyMaterialID)
	}
	return f
}

func (u AssignmentUpload) files() []FilePart {
	if u.File == nil {
		return nil
	}
	return []FilePart{*u.File}
}

func (s *AssignmentService) Create(ctx context.Context, u AssignmentUpload) error {
	return s.c.postMultipart(ctx, "POST", "/assignments", u.fields(), u.files(), nil)
}

func (s *AssignmentService) Update(ctx context.Context, id int, u AssignmentUpload) error {
	return s.c.postMultipart(ctx, "PUT", fmt.Sprintf("/assignments/%d", id), u.fields(), u.files(), nil)
}

func (s *AssignmentService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/assignments/%d", id))
}

// SubmissionService maps the /submissions resource and its evaluate
// operation.
type SubmissionService struct{ c *Client }

func (c *Client) Submissions() *SubmissionService { return &SubmissionService{c} }

func (s *SubmissionService) ByAssignment(ctx context.Context, assignmentID int) ([]Submission, error) {
	var out []Submission
	err := s.c.get(ctx, fmt.Sprintf("/submissions?assignment_id=%d", assignmentID), &out)
	return out, err
}

func (s *SubmissionService) ByStudent(ctx context.Context, studentID int) ([]Submission, error) {
	var out []Submission
	err := s.c.get(ctx, fmt.Sprintf("/submissions?student_id=%d", studentID), &out)
	return out, err
}

// SubmissionUpload is a student's answer: free text, a file, or both.
type SubmissionUpload struct {
	AssignmentID   int
	StudentID      int
	SubmissionText string
	File           *FilePart
}

func (s *SubmissionService) Create(ctx context.Context, u SubmissionUpload) error {
	fields := map[string]string{
		"assignment_id":   strconv.Itoa(u.AssignmentID),
		"student_id":      strconv.Itoa(u.StudentID),
		"submission_text": u.SubmissionText,
	}
	var files []FilePart
	if u.File != nil {
		files = append(files, *u.File)
	}
	return s.c.postMultipart(ctx, "POST", "/submissions", fields, files, nil)
}

// Evaluation is the grading payload for POST /submissions/{id}/evaluate.
type Evaluation struct {
	StaffID       int     `json:"staff_id"`
	MarksObtained float64 `json:"marks_obtained"`
	Feedback      string  `json:"feedback"`
}

func (s *SubmissionService) Evaluate(ctx context.Context, submissionID int, ev Evaluation) error {
	return s.c.postJSON(ctx, fmt.Sprintf("/submissions/%d/evaluate", submissionID), ev, nil)
}
