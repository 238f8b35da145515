package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MCQService maps the /mcqs resource and the quiz attempt endpoints.
type MCQService struct{ c *Client }

func (c *Client) MCQs() *MCQService { return &MCQService{c} }

// MCQFilter narrows List; zero values are omitted.
type MCQFilter struct {
	CourseID        int
	StaffID         int
	StudyMaterialID int
}

func (f MCQFilter) query() string {
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

func (s *MCQService) List(ctx context.Context, f MCQFilter) ([]Question, error) {
	var out []Question
	err := s.c.get(ctx, "/mcqs"+f.query(), &out)
	return out, err
}

func (s *MCQService) Get(ctx context.Context, id int) (*Question, error) {
	var out Question
	if err := s.c.get(ctx, fmt.Sprintf("/mcqs/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MCQUpload is the question create/update payload.
type MCQUpload struct {
	QuestionText    string  `json:"question_text"`
	OptionA         string  `json:"option_a"`
	OptionB         string  `json:"option_b"`
	OptionC         string  `json:"option_c,omitempty"`
	OptionD         string  `json:"option_d,omitempty"`
	CorrectAnswer   string  `json:"correct_answer"`
	Marks           float64 `json:"marks"`
	CourseID        int     `json:"course_id"`
	StaffID         int     `json:"staff_id"`
	StudyMaterialID int     `json:"study_material_id,omitempty"`
}

func (s *MCQService) Create(ctx context.Context, u MCQUpload) error {
	return s.c.postJSON(ctx, "/mcqs", u, nil)
}

func (s *MCQService) Update(ctx context.Context, id int, u MCQUpload) error {
	return s.c.putJSON(ctx, fmt.Sprintf("/mcqs/%d", id), u, nil)
}

func (s *MCQService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/mcqs/%d", id))
}

// CourseQuiz fetches the quiz for a course with the student's attempted
// flags precomputed by the backend.
func (s *MCQService) CourseQuiz(ctx context.Context, courseID, studentID int) (*Quiz, error) {
	var out Quiz
	if err := s.c.get(ctx, fmt.Sprintf("/courses/%d/quiz?student_id=%d", courseID, studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MaterialQuiz fetches the quiz bound to one study material.
func (s *MCQService) MaterialQuiz(ctx context.Context, materialID, studentID int) (*Quiz, error) {
	var out Quiz
	if err := s.c.get(ctx, fmt.Sprintf("/materials/%d/quiz?student_id=%d", materialID, studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAnswer scores one selection. The backend rejects re-attempts with
// a 400 "Already attempted this question" payload.
func (s *MCQService) SubmitAnswer(ctx context.Context, mcqID, studentID int, selected string) (*AttemptResult, error) {
	body := map[string]any{
		"student_id":      studentID,
		"selected_answer": selected,
	}
	var out AttemptResult
	if err := s.c.postJSON(ctx, fmt.Sprintf("/mcqs/%d/attempt", mcqID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentResults returns per-course quiz tallies for the results screen.
func (s *MCQService) StudentResults(ctx context.Context, studentID int) ([]QuizResult, error) {
	var out []QuizResult
	err := s.c.get(ctx, fmt.Sprintf("/student/%d/quiz-results", studentID), &out)
	return out, err
}
