package ports

import (
	"context"
	"mime/multipart"
)

// ImageStore persists an uploaded profile picture and returns the public URL
// path it will be served from. Implementations reject non-image and oversize
// files before writing anything.
type ImageStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}
