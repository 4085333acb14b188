// Package ingest reads CV source files into plain text for extraction.
//
// Plain text and .docx files are handled natively; .pdf and legacy .doc
// files shell out to pdftotext and antiword, which must be on PATH.
package ingest

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-cvfill/pkg/docx"
)

const (
	// minTextLength is the shortest output still considered a successful
	// extraction; anything shorter usually means a scanned or empty file.
	minTextLength = 50

	binarySampleSize = 1000
	binaryThreshold  = 0.3
)

// Read extracts the text of the CV at path. The file type is chosen by
// extension.
func Read(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return readTXT(path)
	case ".pdf":
		return readPDF(ctx, path)
	case ".docx":
		return readDOCX(path)
	case ".doc":
		return readDOC(ctx, path)
	default:
		return "", errors.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func readTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	if IsBinary(data) {
		return "", errors.Errorf("%s looks like binary data, not text", path)
	}
	return string(data), nil
}

func readPDF(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "pdftotext failed for %s (install poppler-utils)", path)
	}
	text := string(output)
	if len(text) < minTextLength {
		return "", errors.Errorf("extracted text from %s is too short, likely a scanned PDF", path)
	}
	return text, nil
}

func readDOCX(path string) (string, error) {
	archive, err := docx.OpenArchiveFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", path)
	}
	doc, err := archive.Document()
	if err != nil {
		return "", errors.Wrapf(err, "parsing %s", path)
	}
	return doc.Text(), nil
}

func readDOC(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "antiword", path)
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "antiword failed for %s", path)
	}
	return string(output), nil
}

// IsBinary reports whether data looks like a binary payload: a PDF or ZIP
// magic number, or a high share of non-printable bytes.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if strings.HasPrefix(string(data[:min(5, len(data))]), "%PDF-") {
		return true
	}
	if len(data) >= 2 && data[0] == 'P' && data[1] == 'K' {
		return true
	}

	sample := min(binarySampleSize, len(data))
	nonPrintable := 0
	for i := 0; i < sample; i++ {
		b := data[i]
		if b < 32 && b != '\n' && b != '\r' && b != '\t' {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(sample) > binaryThreshold
}
