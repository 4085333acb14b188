package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	if err := os.WriteFile(path, []byte("Jane Doe\nQuality Manager"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Errorf("text = %q", text)
	}
}

func TestReadTXTRejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	if err := os.WriteFile(path, []byte("%PDF-1.7 rest of pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(context.Background(), path); err == nil {
		t.Fatal("expected error for binary content in .txt")
	}
}

func TestReadDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	documentXML := `<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "cv.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Errorf("text = %q", text)
	}
}

func TestReadUnsupportedType(t *testing.T) {
	if _, err := Read(context.Background(), "cv.png"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "empty", data: nil, want: false},
		{name: "plain text", data: []byte("hello world"), want: false},
		{name: "pdf magic", data: []byte("%PDF-1.4"), want: true},
		{name: "zip magic", data: []byte("PK\x03\x04rest"), want: true},
		{name: "control bytes", data: bytes.Repeat([]byte{0x01, 0x02}, 100), want: true},
		{name: "text with newlines", data: []byte("line one\nline two\r\n\tindented"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.want {
				t.Errorf("IsBinary = %v, want %v", got, tt.want)
			}
		})
	}
}
