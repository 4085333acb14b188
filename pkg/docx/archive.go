package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// DocumentPartName is the archive entry carrying the document body.
const DocumentPartName = "word/document.xml"

// Archive is an opened .docx package.
type Archive struct {
	reader *zip.Reader
	parts  map[string]*zip.File
}

// OpenArchive opens a .docx package from a random-access reader.
func OpenArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading docx archive: %w", err)
	}

	a := &Archive{
		reader: zr,
		parts:  make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		a.parts[f.Name] = f
	}

	if _, ok := a.parts[DocumentPartName]; !ok {
		return nil, fmt.Errorf("not a valid docx file: missing %s", DocumentPartName)
	}
	return a, nil
}

// OpenArchiveBytes opens a .docx package held in memory.
func OpenArchiveBytes(data []byte) (*Archive, error) {
	return OpenArchive(bytes.NewReader(data), int64(len(data)))
}

// OpenArchiveFile opens a .docx package from disk.
func OpenArchiveFile(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return OpenArchiveBytes(data)
}

// Part returns the content of a named archive entry.
func (a *Archive) Part(name string) ([]byte, error) {
	f, ok := a.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading part %s: %w", name, err)
	}
	return content, nil
}

// Document parses the archive's word/document.xml.
func (a *Archive) Document() (*Document, error) {
	data, err := a.Part(DocumentPartName)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// WriteReplacing writes the package to w with word/document.xml replaced by
// documentXML. Every other part is copied byte for byte in its original
// order, so styles, numbering, media and relationships survive untouched.
func (a *Archive) WriteReplacing(w io.Writer, documentXML []byte) error {
	zw := zip.NewWriter(w)
	for _, f := range a.reader.File {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", f.Name, err)
		}
		if f.Name == DocumentPartName {
			if _, err := fw.Write(documentXML); err != nil {
				return fmt.Errorf("writing %s: %w", f.Name, err)
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("opening archive entry %s: %w", f.Name, err)
		}
		if _, err := io.Copy(fw, rc); err != nil {
			rc.Close()
			return fmt.Errorf("copying archive entry %s: %w", f.Name, err)
		}
		rc.Close()
	}
	return zw.Close()
}
