package api

import (
	"context"
	"fmt"
)

// AcademicYearService maps the /academic-years resource.
type AcademicYearService struct{ c *Client }

func (c *Client) AcademicYears() *AcademicYearService { return &AcademicYearService{c} }

func (s *AcademicYearService) List(ctx context.Context) ([]AcademicYear, error) {
	var out []AcademicYear
	err := s.c.get(ctx, "/academic-years", &out)
	return out, err
}

// CreateAcademicYear is the creation payload; dates are YYYY-MM-DD.
type CreateAcademicYear struct {
	YearName  string `json:"year_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (s *AcademicYearService) Create(ctx context.Context, req CreateAcademicYear) error {
	return s.c.postJSON(ctx, "/academic-years", req, nil)
}

func (s *AcademicYearService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/academic-years/%d", id))
}

// SemesterService maps the /semesters resource.
type SemesterService struct{ c *Client }

func (c *Client) Semesters() *SemesterService { return &SemesterService{c} }

func (s *SemesterService) List(ctx context.Context) ([]Semester, error) {
	var out []Semester
	err := s.c.get(ctx, "/semesters", &out)
	return out, err
}

func (s *SemesterService) Create(ctx context.Context, name string) error {
	return s.c.postJSON(ctx, "/semesters", map[string]string{"semester_name": name}, nil)
}

func (s *SemesterService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/semesters/%d", id))
}

// ProgramService maps the /programs resource.
type ProgramService struct{ c *Client }

func (c *Client) Programs() *ProgramService { return &ProgramService{c} }

func (s *ProgramService) List(ctx context.Context) ([]Program, error) {
	var out []Program
	err := s.c.get(ctx, "/programs", &out)
	return out, err
}

type CreateProgram struct {
	ProgramName string `json:"program_name"`
	ProgramCode string `json:"program_code"`
}

func (s *ProgramService) Create(ctx context.Context, req CreateProgram) error {
	return s.c.postJSON(ctx, "/programs", req, nil)
}

func (s *ProgramService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/programs/%d", id))
}

// CourseService maps the /courses resource.
type CourseService struct{ c *Client }

func (c *Client) Courses() *CourseService { return &CourseService{c} }

func (s *CourseService) List(ctx context.Context) ([]Course, error) {
	var out []Course
	err := s.c.get(ctx, "/courses", &out)
	return out, err
}

type CreateCourse struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	ProgramID  int    `json:"program_id"`
	SemesterID int    `json:"semester_id"`
}

func (s *CourseService) Create(ctx context.Context, req CreateCourse) error {
	return s.c.postJSON(ctx, "/courses", req, nil)
}

func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/courses/%d", id))
}

// StaffCourseService maps the /staff-courses allocation resource.
type StaffCourseService struct{ c *Client }

func (c *Client) StaffCourses() *StaffCourseService { return &StaffCourseService{c} }

func (s *StaffCourseService) List(ctx context.Context) ([]StaffCourse, error) {
	var out []StaffCourse
	err := s.c.get(ctx, "/staff-courses", &out)
	return out, err
}

// ByStaff returns the allocations for one staff member. The backend
// filters on the explicit staff_id query parameter.
func (s *StaffCourseService) ByStaff(ctx context.Context, staffID int) ([]StaffCourse, error) {
	var out []StaffCourse
	err := s.c.get(ctx, fmt.Sprintf("/staff-courses?staff_id=%d", staffID), &out)
	return out, err
}

type CreateStaffCourse struct {
	StaffID        int `json:"staff_id"`
	CourseID       int `json:"course_id"`
	AcademicYearID int `json:"academic_year_id"`
}

func (s *StaffCourseService) Create(ctx context.Context, req CreateStaffCourse) error {
	return s.c.postJSON(ctx, "/staff-courses", req, nil)
}

func (s *StaffCourseService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/staff-courses/%d", id))
}
