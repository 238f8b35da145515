package api

import (
	"context"
	"fmt"
)

// StudyMaterialService maps the /study-materials resource, including the
// per-course and parent/child sub-resources.
type StudyMaterialService struct{ c *Client }

func (c *Client) StudyMaterials() *StudyMaterialService { return &StudyMaterialService{c} }

func (s *StudyMaterialService) List(ctx context.Context) ([]StudyMaterial, error) {
	var out []StudyMaterial
	err := s.c.get(ctx, "/study-materials", &out)
	return out, err
}

func (s *StudyMaterialService) Get(ctx context.Context, id int) (*StudyMaterial, error) {
	var out StudyMaterial
	if err := s.c.get(ctx, fmt.Sprintf("/study-materials/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudyMaterialService) ByCourse(ctx context.Context, courseID int) ([]StudyMaterial, error) {
	var out []StudyMaterial
	err := s.c.get(ctx, fmt.Sprintf("/courses/%d/materials", courseID), &out)
	return out, err
}

// MaterialUpload describes one material being added. A non-nil File makes
// the request multipart; otherwise the metadata goes up as JSON (youtube
// links and text-only materials have no file).
type MaterialUpload struct {
	Title       string
	Description string
	FileType    string // video, youtube, pdf, ppt
	LinkURL     string // youtube only
	File        *FilePart
}

func (u MaterialUpload) fields() map[string]string {
	f := map[string]string{
		"title":       u.Title,
		"description": u.Description,
		"file_type":   u.FileType,
	}
	if u.LinkURL != "" {
		f["file_path"] = u.LinkURL
	}
	return f
}

// AddToCourse attaches a material to a course.
func (s *StudyMaterialService) AddToCourse(ctx context.Context, courseID int, u MaterialUpload) error {
	path := fmt.Sprintf("/courses/%d/materials", courseID)
	if u.File != nil {
		return s.c.postMultipart(ctx, "POST", path, u.fields(), []FilePart{*u.File}, nil)
	}
	return s.c.postJSON(ctx, path, u.fields(), nil)
}

// AddChild nests a material under a parent (e.g. a quiz PDF under a video).
func (s *StudyMaterialService) AddChild(ctx context.Context, parentID int, u MaterialUpload) error {
	path := fmt.Sprintf("/study-materials/%d/children", parentID)
	if u.File != nil {
		return s.c.postMultipart(ctx, "POST", path, u.fields(), []FilePart{*u.File}, nil)
	}
	return s.c.postJSON(ctx, path, u.fields(), nil)
}

func (s *StudyMaterialService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/study-materials/%d", id))
}
