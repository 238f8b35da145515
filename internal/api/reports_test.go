package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamRosterCarriesOptionalRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exams/course/10/students", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"student_code":"STU001","full_name":"Anna Schmidt","email":"anna@example.com",
			 "exam":{"id":4,"cca1_marks":17.5,"cca1_file_path":"uploads/exams/a.pdf","cca2_marks":null,"cca2_file_path":null}},
			{"id":2,"student_code":"STU002","full_name":"Ben Ito","email":"ben@example.com","exam":null}
		]`))
	}, "tok")

	students, err := c.Exams().StudentsForCourse(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, students, 2)

	require.NotNil(t, students[0].Exam)
	require.NotNil(t, students[0].Exam.CCA1Marks)
	assert.Equal(t, 17.5, *students[0].Exam.CCA1Marks)
	assert.Nil(t, students[0].Exam.CCA2Marks)
	assert.Nil(t, students[1].Exam)
}

func TestStudentCourseExamDecodesHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exams/student/1/course/10", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"student":{"id":1,"student_code":"STU001","full_name":"Anna Schmidt","email":"anna@example.com"},
			"course":{"id":10,"course_code":"GER-A1","course_name":"Basic Grammar"},
			"exam":null
		}`))
	}, "tok")

	detail, err := c.Exams().StudentCourseExam(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Anna Schmidt", detail.Student.FullName)
	assert.Equal(t, "GER-A1", detail.Course.CourseCode)
	assert.Nil(t, detail.Exam)
}

func TestSaveExamSendsMultipartForm(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/exams", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "1", r.FormValue("student_id"))
		assert.Equal(t, "10", r.FormValue("course_id"))
		assert.Equal(t, "42", r.FormValue("staff_id"))
		assert.Equal(t, "17.5", r.FormValue("cca1_marks"))
		// Empty marks stay out of the form entirely.
		_, sent := r.MultipartForm.Value["cca2_marks"]
		assert.False(t, sent)

		file, header, err := r.FormFile("cca1_file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "paper.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"message":"Exam record saved successfully"}`))
	}, "tok")

	err := c.Exams().Save(context.Background(), ExamUpload{
		StudentID: 1,
		CourseID:  10,
		StaffID:   42,
		CCA1Marks: "17.5",
		CCA1File:  &FilePart{Field: "cca1_file", Filename: "paper.pdf", Content: strings.NewReader("scan")},
	})
	require.NoError(t, err)
}

func TestDeleteExamHitsRecordPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/exams/4", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Exam record deleted successfully"}`))
	}, "tok")

	require.NoError(t, c.Exams().Delete(context.Background(), 4))
}

func TestSubmitFeedbackOmitsUnsetTargets(t *testing.T) {
	var body string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"message":"Feedback submitted successfully"}`))
	}, "tok")

	err := c.Feedbacks().Submit(context.Background(), SubmitFeedback{
		StudentID:    1,
		CourseID:     10,
		Rating:       5,
		FeedbackText: "Great course",
	})
	require.NoError(t, err)
	assert.Contains(t, body, `"course_id":10`)
	assert.NotContains(t, body, "staff_id")
}

func TestFeedbackSummaryCarriesAverage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback/staff/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"feedbacks":[{"id":9,"student_name":"Anonymous","course_id":10,"rating":4,"feedback_text":"Clear lectures","submitted_at":"2026-03-01T10:00:00"}],
			"total_count":1,
			"average_rating":4.0
		}`))
	}, "tok")

	summary, err := c.Feedbacks().ByStaff(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalCount)
	assert.Equal(t, 4.0, summary.AverageRating)
	require.Len(t, summary.Feedbacks, 1)
	assert.Equal(t, "Anonymous", summary.Feedbacks[0].StudentName)
}

func TestFeedbackByCourseUsesSummaryEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback/course/10", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"feedbacks":[],"total_count":0,"average_rating":0}`))
	}, "tok")

	summary, err := c.Feedbacks().ByCourse(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCount)
	assert.Empty(t, summary.Feedbacks)
}

func TestFeedbackByStudentIsAPlainList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback/student/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":9,"course_id":10,"course_name":"Basic Grammar","rating":5,"feedback_text":"Great","is_anonymous":false}]`))
	}, "tok")

	feedbacks, err := c.Feedbacks().ByStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "Basic Grammar", feedbacks[0].CourseName)
}

func TestFeedbackListDecodesJoinedNames(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":9,"student_name":"Anna Schmidt","staff_name":"Dr. Weber","rating":3,"feedback_text":"ok"}]`))
	}, "tok")

	feedbacks, err := c.Feedbacks().List(context.Background())
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "Dr. Weber", feedbacks[0].StaffName)
}

func TestStaffReportDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/staff/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"staff_id":42,"course_count":3,"assignment_count":7,"mcq_count":12}`))
	}, "tok")

	report, err := c.Reports().StaffReport(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 3, report.CourseCount)
}
