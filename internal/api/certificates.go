package api

import (
	"context"
	"fmt"
)

// CertificateService maps the /certificate-layouts resource. The client
// lists and manages layout records; rendering them is a backend concern.
type CertificateService struct{ c *Client }

func (c *Client) Certificates() *CertificateService { return &CertificateService{c} }

func (s *CertificateService) List(ctx context.Context) ([]CertificateLayout, error) {
	var out []CertificateLayout
	err := s.c.get(ctx, "/certificate-layouts", &out)
	return out, err
}

func (s *CertificateService) Get(ctx context.Context, id int) (*CertificateLayout, error) {
	var out CertificateLayout
	if err := s.c.get(ctx, fmt.Sprintf("/certificate-layouts/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LayoutUpload is the create/update payload. TemplateContent is the
// serialized canvas document the designer produces.
type LayoutUpload struct {
	LayoutName      string `json:"layout_name"`
	TemplateContent string `json:"template_content"`
	BackgroundImage string `json:"background_image,omitempty"`
	ProgramID       int    `json:"program_id"`
	IsDefault       bool   `json:"is_default"`
}

func (s *CertificateService) Create(ctx context.Context, u LayoutUpload) error {
	return s.c.postJSON(ctx, "/certificate-layouts", u, nil)
}

func (s *CertificateService) Update(ctx context.Context, id int, u LayoutUpload) error {
	return s.c.putJSON(ctx, fmt.Sprintf("/certificate-layouts/%d", id), u, nil)
}

func (s *CertificateService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/certificate-layouts/%d", id))
}

func (s *CertificateService) ByProgram(ctx context.Context, programID int) ([]CertificateLayout, error) {
	var out []CertificateLayout
	err := s.c.get(ctx, fmt.Sprintf("/programs/%d/certificate-layouts", programID), &out)
	return out, err
}

func (s *CertificateService) DefaultForProgram(ctx context.Context, programID int) (*CertificateLayout, error) {
	var out CertificateLayout
	if err := s.c.get(ctx, fmt.Sprintf("/programs/%d/default-certificate-layout", programID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
