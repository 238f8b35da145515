// Package api is the REST boundary of the client: a thin HTTP adapter plus
// one typed facade per backend resource. Every call goes through a single
// request path that normalizes transport failures, HTTP status failures and
// payload-encoded failures into one error type.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error kinds. Transport covers failures before an HTTP status exists,
// HTTP covers non-2xx statuses, Payload covers 2xx bodies that carry an
// application-level error field.
const (
	KindTransport = "transport"
	KindHTTP      = "http"
	KindPayload   = "payload"
)

// Error is the single error channel for every backend interaction.
type Error struct {
	Kind    string
	Status  int // 0 for transport errors
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 && e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	if e.Status > 0 {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return "api: " + e.Message
}

// IsStatus reports whether err is an api error with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == status
}

// TokenSource supplies the current session token, empty when anonymous.
// Keeping this a callback keeps the adapter free of session-store imports.
type TokenSource func() string

// Client is the HTTP adapter every facade routes through.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *zap.Logger
}

// NewClient builds an adapter against the given API root.
func NewClient(baseURL string, timeout time.Duration, token TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// envelope is the backend's payload-level failure signal. Some endpoints
// return {"error": "..."} or {"success": false} with a 2xx status.
type envelope struct {
	Err     string `json:"error"`
	Success *bool  `json:"success"`
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// postJSON issues a POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(buf), "application/json", out)
}

// putJSON issues a PUT with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	return c.do(ctx, http.MethodPut, path, bytes.NewReader(buf), "application/json", out)
}

// put issues a bodyless PUT (mark-read style endpoints).
func (c *Client) put(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, "", out)
}

// delete issues a DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// FilePart is one file in a multipart upload.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// postMultipart sends form fields and files as multipart/form-data. The
// content type carries the writer's boundary; no explicit JSON header.
func (c *Client) postMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return &Error{Kind: KindTransport, Message: err.Error()}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return &Error{Kind: KindTransport, Message: err.Error()}
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return &Error{Kind: KindTransport, Message: err.Error()}
		}
	}
	if err := w.Close(); err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	return c.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}

// do is the single request path. All error signaling funnels into *Error.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Err != "" {
			msg = env.Err
		}
		return &Error{Kind: KindHTTP, Status: resp.StatusCode, Message: msg}
	}

	// A 2xx body can still carry {"error": ...} or {"success": false}.
	if len(data) > 0 && data[0] == '{' {
		var env envelope
		if json.Unmarshal(data, &env) == nil {
			if env.Err != "" {
				return &Error{Kind: KindPayload, Status: resp.StatusCode, Message: env.Err}
			}
			if env.Success != nil && !*env.Success {
				return &Error{Kind: KindPayload, Status: resp.StatusCode, Message: "request was not successful"}
			}
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindTransport, Message: "decode response: " + err.Error()}
	}
	return nil
}
