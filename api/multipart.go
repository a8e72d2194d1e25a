// ABOUTME: Multipart form submission for custom-order uploads
// ABOUTME: Streams form fields and image files in one request

package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/stephenolajire/Ronkz-Couture/models"
)

// PostMultipart performs POST path as multipart/form-data with the given
// scalar fields and file parts. Fields are written in sorted order so
// request bodies are deterministic.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]models.FileUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, fields[name]); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	fileNames := make([]string, 0, len(files))
	for name := range files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)
	for _, name := range fileNames {
		f := files[name]
		part, err := w.CreateFormFile(name, f.Filename)
		if err != nil {
			return fmt.Errorf("failed to create file part %s: %w", name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("failed to write file part %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}
