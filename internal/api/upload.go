package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"studywise-client/internal/dto"

	"github.com/tidwall/gjson"
)

// FileUpload is the file part of a multipart upload.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

const (
	defaultUploadMessage    = "Upload failed"
	defaultPYQUploadMessage = "PYQ upload failed"
)

// UploadSyllabus posts a syllabus PDF together with the subject, the session
// email and the current operating mode.
func (c *Client) UploadSyllabus(ctx context.Context, file FileUpload, subject string) (*dto.SyllabusUploadResponse, error) {
	fields := [][2]string{
		{"subject", subject},
		{"email", c.sess.Email()},
		{"ai_mode", c.sess.Mode(ctx).String()},
	}
	raw, err := c.upload(ctx, "/upload/syllabus", file, fields, defaultUploadMessage)
	if err != nil {
		return nil, err
	}
	var out dto.SyllabusUploadResponse
	if err := c.decode(raw, http.MethodPost, "/upload/syllabus", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPYQ attaches a past-question paper to an existing upload.
func (c *Client) UploadPYQ(ctx context.Context, file FileUpload, uploadID string) (*dto.PYQUploadResponse, error) {
	fields := [][2]string{
		{"upload_id", uploadID},
		{"email", c.sess.Email()},
	}
	raw, err := c.upload(ctx, "/upload/pyq", file, fields, defaultPYQUploadMessage)
	if err != nil {
		return nil, err
	}
	var out dto.PYQUploadResponse
	if err := c.decode(raw, http.MethodPost, "/upload/pyq", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// upload sends a multipart body. The only Content-Type on the request is
// the writer's multipart/form-data with its own boundary.
func (c *Client) upload(ctx context.Context, endpoint string, file FileUpload, fields [][2]string, fallback string) (json.RawMessage, error) {
	if file.Reader == nil {
		return nil, c.reject(http.MethodPost, endpoint, ErrNoFile)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, c.reject(http.MethodPost, endpoint, fmt.Errorf("create file part: %w", err))
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, c.reject(http.MethodPost, endpoint, fmt.Errorf("read upload %s: %w", file.Name, err))
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, c.reject(http.MethodPost, endpoint, fmt.Errorf("write field %s: %w", f[0], err))
		}
	}
	if err := w.Close(); err != nil {
		return nil, c.reject(http.MethodPost, endpoint, fmt.Errorf("close multipart body: %w", err))
	}

	header := http.Header{}
	header.Set("Content-Type", w.FormDataContentType())

	return c.send(ctx, http.MethodPost, endpoint, &buf, header, func(_ int, body []byte) string {
		if r := gjson.GetBytes(body, "error"); r.Exists() && r.String() != "" {
			return r.String()
		}
		return fallback
	})
}
