package api

import (
	"context"
	"fmt"
)

// StaffService maps the /staff resource.
type StaffService struct{ c *Client }

func (c *Client) Staff() *StaffService { return &StaffService{c} }

func (s *StaffService) List(ctx context.Context) ([]Staff, error) {
	var out []Staff
	err := s.c.get(ctx, "/staff", &out)
	return out, err
}

type CreateStaff struct {
	StaffCode string `json:"staff_code"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Password  string `json:"password"`
}

func (s *StaffService) Create(ctx context.Context, req CreateStaff) error {
	return s.c.postJSON(ctx, "/staff", req, nil)
}

func (s *StaffService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/staff/%d", id))
}

// StudentService maps the /students resource.
type StudentService struct{ c *Client }

func (c *Client) Students() *StudentService { return &StudentService{c} }

func (s *StudentService) List(ctx context.Context) ([]Student, error) {
	var out []Student
	err := s.c.get(ctx, "/students", &out)
	return out, err
}

type CreateStudent struct {
	StudentCode string `json:"student_code"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
	ProgramID   int    `json:"program_id"`
	SemesterID  int    `json:"semester_id"`
}

func (s *StudentService) Create(ctx context.Context, req CreateStudent) error {
	return s.c.postJSON(ctx, "/students", req, nil)
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/students/%d", id))
}
