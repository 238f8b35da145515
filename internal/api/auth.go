package api

import "context"

// AuthService covers login and self-registration.
type AuthService struct{ c *Client }

// Auth returns the authentication facade.
func (c *Client) Auth() *AuthService { return &AuthService{c} }

// LoginRequest is the credentials payload. Role selects which account
// table the backend checks.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginResponse carries the principal and the opaque session token.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    Principal `json:"user"`
	Token   string    `json:"token"`
}

// Login authenticates against POST /auth/login. Invalid credentials come
// back as an *Error (the backend signals them with a 401 and an error
// payload); this is the same error channel as every other call.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.c.postJSON(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterRequest is the student self-registration payload.
type RegisterRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProgramID  int    `json:"program_id"`
	SemesterID int    `json:"semester_id"`
	CourseIDs  []int  `json:"course_ids"`
}

// Register creates a student account with its course enrollments.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	return s.c.postJSON(ctx, "/auth/register", req, nil)
}
