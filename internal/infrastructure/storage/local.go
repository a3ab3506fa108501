// Package storage persists uploaded profile pictures on the local filesystem
// and hands back the /uploads/ path they are served from.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadBytes is the hard cap on profile picture size.
const MaxUploadBytes = 5 << 20 // 5 MB

var ErrNotImage = errors.New("only image files are allowed")
var ErrTooLarge = errors.New("file exceeds the 5MB upload limit")

var whitespace = regexp.MustCompile(`\s+`)

// LocalStore writes uploads to dir and serves them back under urlPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewLocalStore creates the upload directory if missing.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: "/uploads", now: time.Now}, nil
}

// Save validates and stores the uploaded file, returning its public URL path.
// Non-image and oversize files are rejected before any byte is written;
// content type comes from sniffing the payload, not the client header.
func (s *LocalStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadBytes {
		return "", ErrTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("sniff upload: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := s.filename(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxUploadBytes)); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// filename builds "{unixMillis}-{sanitized-basename}{ext}". Spaces collapse
// to dashes and any path components in the client-supplied name are dropped.
func (s *LocalStore) filename(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stem = whitespace.ReplaceAllString(stem, "-")
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), stem, ext)
}

// Dir returns the directory uploads are written to, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}
