// Package upload stores product images on disk and resolves their
// public URLs.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrNoFile = errors.New("no file uploaded")

// Saver writes uploaded files into dir and maps them to URLs under
// baseURL + "/uploads/".
type Saver struct {
	dir     string
	baseURL string
}

// NewSaver creates the uploads directory if needed.
func NewSaver(dir, baseURL string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Saver{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save stores the uploaded file under a collision-resistant name, a
// millisecond timestamp prefixed to the sanitized original filename,
// and returns the public URL.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(fh.Filename))
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.baseURL + "/uploads/" + name, nil
}

// sanitize strips any path components and characters that do not
// belong in a filename served back over HTTP.
func sanitize(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "file"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
