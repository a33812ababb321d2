package storage

import (
	"context"
	"io"
)

// Uploader persists an uploaded document (resume, cover letter) and returns
// the path under which it was stored.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}
