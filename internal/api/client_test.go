package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, func() string { return token }, nil)
}

func TestGetDecodesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/programs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"program_name":"German A1","program_code":"GER-A1"}]`))
	}, "")

	programs, err := c.Programs().List(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "German A1", programs[0].ProgramName)
}

func TestNonTwoHundredBecomesHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Already attempted this question"}`))
	}, "")

	_, err := c.MCQs().SubmitAnswer(context.Background(), 5, 9, "A")
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok, "error should be *Error, got %T", err)
	assert.Equal(t, KindHTTP, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Already attempted this question", apiErr.Message)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestStatusWithoutErrorPayloadUsesStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "")

	err := c.Semesters().Delete(context.Background(), 3)
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestTwoHundredWithErrorFieldIsPayloadError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"duplicate course code"}`))
	}, "")

	err := c.Courses().Create(context.Background(), CreateCourse{CourseCode: "X"})
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindPayload, apiErr.Kind)
	assert.Equal(t, "duplicate course code", apiErr.Message)
}

func TestTwoHundredWithSuccessFalseIsPayloadError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}, "")

	err := c.Semesters().Create(context.Background(), "Semester 1")
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindPayload, apiErr.Kind)
}

func TestTransportFailureHasNoStatus(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, nil, nil)

	_, err := c.Programs().List(context.Background())
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
}

func TestAuthorizationHeaderCarriesToken(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}, "tok-xyz")

	_, err := c.Staff().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestAnonymousRequestHasNoAuthorizationHeader(t *testing.T) {
	var gotAuth string
	hit := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hit = true
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":1,"role":"student","full_name":"A"},"token":"t"}`))
	}, "")

	_, err := c.Auth().Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x", Role: RoleStudent})
	require.NoError(t, err)
	require.True(t, hit)
	assert.Empty(t, gotAuth)
}

func TestLoginDecodesPrincipalAndToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":4,"email":"anna@example.com","full_name":"Anna Schmidt","role":"staff"},"token":"tok-1"}`))
	}, "")

	resp, err := c.Auth().Login(context.Background(), LoginRequest{Email: "anna@example.com", Password: "secret1", Role: RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, resp.User.Role)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "Anna Schmidt", resp.User.FullName)
}

func TestMultipartUploadCarriesFieldsAndFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Week 1", r.FormValue("title"))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.pdf", header.Filename)
		_, _ = w.Write([]byte(`{"success":true}`))
	}, "")

	err := c.StudyMaterials().AddToCourse(context.Background(), 2, MaterialUpload{
		Title:    "Week 1",
		FileType: "pdf",
		File:     &FilePart{Field: "file", Filename: "notes.pdf", Content: strings.NewReader("pdf bytes")},
	})
	require.NoError(t, err)
}

func TestYoutubeMaterialGoesUpAsJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}, "")

	err := c.StudyMaterials().AddToCourse(context.Background(), 2, MaterialUpload{
		Title:    "Intro video",
		FileType: "youtube",
		LinkURL:  "https://youtube.com/watch?v=abc",
	})
	require.NoError(t, err)
}
