// Package intake accepts user-selected files for attachment to a
// record.  Only images pass the gate; anything else is dropped and
// reported so the caller can raise a warning notification without
// blocking the submission.  Accepted files are either encoded inline
// as data URLs (multi-attachment forms) or uploaded to the remote
// blob bucket (single-attachment forms).
package intake

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/joacia/laundry-service/internal/gateway"
)

// File is one user-selected file, fully read into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// isImage applies the MIME gate.  The declared content type wins;
// when the browser sent none, the first bytes are sniffed.
func (f File) isImage() bool {
	ct := f.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(f.Data)
	}
	return strings.HasPrefix(ct, "image/")
}

// DataURL returns the inline base64 representation used by
// multi-attachment forms.
func (f File) DataURL() string {
	ct := f.ContentType
	if ct == "" {
		ct = http.DetectContentType(f.Data)
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// Result partitions screened files.  Rejected holds the names of
// files that failed the MIME gate, in input order.
type Result struct {
	Accepted []File
	Rejected []string
}

// Warnings renders one user-facing message per rejected file.
func (r Result) Warnings() []string {
	msgs := make([]string, 0, len(r.Rejected))
	for _, name := range r.Rejected {
		msgs = append(msgs, fmt.Sprintf("File type not supported: %s", name))
	}
	return msgs
}

// Screen checks every file against the image gate.  Order is
// preserved so "first accepted file" is well defined for the
// single-upload variant.
func Screen(files []File) Result {
	var res Result
	for _, f := range files {
		if f.isImage() {
			res.Accepted = append(res.Accepted, f)
		} else {
			res.Rejected = append(res.Rejected, f.Name)
		}
	}
	return res
}

// DataURLs returns the inline representation of every accepted file.
func DataURLs(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.DataURL())
	}
	return out
}

// Pipeline uploads accepted files to the remote blob bucket.
type Pipeline struct {
	gw     *gateway.Client
	bucket string
}

// NewPipeline returns a Pipeline bound to the given bucket.
func NewPipeline(gw *gateway.Client, bucketID string) *Pipeline {
	return &Pipeline{gw: gw, bucket: bucketID}
}

// UploadFirst uploads the first accepted file and returns the server
// file identifier.  Returns "" when there is nothing to upload or no
// backend is configured.  Once started the upload cannot be aborted
// except through ctx.
func (p *Pipeline) UploadFirst(ctx context.Context, files []File) (string, error) {
	if len(files) == 0 || !p.gw.Configured() {
		return "", nil
	}
	f := files[0]
	return p.gw.UploadFile(ctx, p.bucket, newFileID(), f.Name, bytes.NewReader(f.Data))
}

// newFileID generates the client-side unique identifier required by
// the blob API.
func newFileID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "file-fallback"
	}
	return hex.EncodeToString(b[:])
}
