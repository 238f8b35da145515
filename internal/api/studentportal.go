package api

import (
	"context"
	"fmt"
)

// StudentPortalService maps the /student/{id}/... aggregate endpoints the
// student dashboard and course screens consume.
type StudentPortalService struct{ c *Client }

func (c *Client) StudentPortal() *StudentPortalService { return &StudentPortalService{c} }

func (s *StudentPortalService) Dashboard(ctx context.Context, studentID int) (*StudentDashboard, error) {
	var out StudentDashboard
	if err := s.c.get(ctx, fmt.Sprintf("/student/%d/dashboard", studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentPortalService) Courses(ctx context.Context, studentID int) ([]Course, error) {
	var out []Course
	err := s.c.get(ctx, fmt.Sprintf("/student/%d/courses", studentID), &out)
	return out, err
}

func (s *StudentPortalService) CourseMaterials(ctx context.Context, studentID, courseID int) ([]StudyMaterial, error) {
	var out []StudyMaterial
	err := s.c.get(ctx, fmt.Sprintf("/student/%d/courses/%d/materials", studentID, courseID), &out)
	return out, err
}

func (s *StudentPortalService) Results(ctx context.Context, studentID int) ([]Result, error) {
	var out []Result
	err := s.c.get(ctx, fmt.Sprintf("/student/%d/results", studentID), &out)
	return out, err
}

// CourseResults returns the per-course rollups (assignment + quiz marks).
func (s *StudentPortalService) CourseResults(ctx context.Context, studentID int) ([]Result, error) {
	var out []Result
	err := s.c.get(ctx, fmt.Sprintf("/student/%d/course-results", studentID), &out)
	return out, err
}

// ResultBreakdown returns one course's detailed result composition.
func (s *StudentPortalService) ResultBreakdown(ctx context.Context, studentID, courseID int) (map[string]any, error) {
	var out map[string]any
	err := s.c.get(ctx, fmt.Sprintf("/student/%d/courses/%d/result-breakdown", studentID, courseID), &out)
	return out, err
}

// Enroll adds the student to a course.
func (s *StudentPortalService) Enroll(ctx context.Context, studentID, courseID int) error {
	body := map[string]int{"course_id": courseID}
	return s.c.postJSON(ctx, fmt.Sprintf("/student/%d/courses", studentID), body, nil)
}
