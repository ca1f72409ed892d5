package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadedHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestSaver_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSaver(dir, "http://localhost:3001/")
	if err != nil {
		t.Fatal(err)
	}

	url, err := s.Save(uploadedHeader(t, "fone preto.jpg", []byte("jpeg-bytes")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:3001/uploads/") {
		t.Fatalf("url = %q", url)
	}

	name := strings.TrimPrefix(url, "http://localhost:3001/uploads/")
	if !strings.HasSuffix(name, "-fone_preto.jpg") {
		t.Fatalf("filename %q not sanitized with time prefix", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("stored content %q", data)
	}
}

func TestSaver_NilFile(t *testing.T) {
	s, err := NewSaver(t.TempDir(), "http://x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save(nil); err != ErrNoFile {
		t.Fatalf("got %v, want ErrNoFile", err)
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"fone.jpg":        "fone.jpg",
		"../../etc/x.jpg": "x.jpg",
		"foto nova.png":   "foto_nova.png",
		"":                "file",
	}
	for in, want := range cases {
		if got := sanitize(in); got != want {
			t.Fatalf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}
