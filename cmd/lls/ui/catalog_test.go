package ui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenUploadBuffersTheFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("pdf bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	part, err := openUpload(path)
	if err != nil {
		t.Fatal(err)
	}
	if part.Field != "file" || part.Filename != "notes.pdf" {
		t.Fatalf("part = %+v", part)
	}

	// The source file can disappear once the part exists; the upload must
	// not hold a handle on it.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(part.Content)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "pdf bytes" {
		t.Fatalf("content = %q", data)
	}
}

func TestOpenUploadEmptyPathMeansNoPart(t *testing.T) {
	part, err := openUpload("")
	if err != nil || part != nil {
		t.Fatalf("part = %v, err = %v, want nil, nil", part, err)
	}
}

func TestOpenUploadMissingFileFails(t *testing.T) {
	if _, err := openUpload(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("a missing file must be reported before the request is built")
	}
}
