package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// UploadFile stores raw file bytes in the given bucket under a
// client-generated unique identifier and returns the server file
// identifier, which callers embed in order documents as a foreign
// reference.  An in-flight upload cannot be cancelled other than
// through the context.
func (c *Client) UploadFile(ctx context.Context, bucketID, fileID, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("fileId", fileID); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}

	path := fmt.Sprintf("/storage/buckets/%s/files", url.PathEscape(bucketID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}
	var payload struct {
		ID string `json:"$id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.ID, nil
}
