package cvfill

import (
	"bytes"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/benjaminschreck/go-cvfill/pkg/docx"
)

// Engine prepares templates for rendering.
type Engine struct {
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by renders of templates this engine
// prepares.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Template is a prepared CV template. It holds the source bytes of the
// .docx; every Render deserializes its own document instance, so one
// Template can serve many records, concurrently.
type Template struct {
	source []byte
	log    *zap.Logger
}

// Prepare reads the template and verifies it is a parseable .docx. The
// reader is consumed fully.
func (e *Engine) Prepare(r io.Reader) (*Template, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, NewDocumentError("", err)
	}
	return e.PrepareBytes(source)
}

// PrepareBytes prepares a template already held in memory.
func (e *Engine) PrepareBytes(source []byte) (*Template, error) {
	archive, err := docx.OpenArchiveBytes(source)
	if err != nil {
		return nil, NewDocumentError(docx.DocumentPartName, err)
	}
	if _, err := archive.Document(); err != nil {
		return nil, NewDocumentError(docx.DocumentPartName, err)
	}
	return &Template{source: source, log: e.log}, nil
}

// PrepareFile prepares a template from disk.
func (e *Engine) PrepareFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError(path, err)
	}
	return e.PrepareBytes(data)
}

// Render fills the template with the record and returns the produced .docx
// bytes. The template itself is never mutated.
func (t *Template) Render(rec CandidateRecord) (io.Reader, *RenderReport, error) {
	archive, err := docx.OpenArchiveBytes(t.source)
	if err != nil {
		return nil, nil, NewDocumentError(docx.DocumentPartName, err)
	}
	doc, err := archive.Document()
	if err != nil {
		return nil, nil, NewDocumentError(docx.DocumentPartName, err)
	}

	renderer := NewRenderer(Resolve(rec), t.log)
	report := renderer.RenderDocument(doc)

	var buf bytes.Buffer
	if err := archive.WriteReplacing(&buf, doc.XML()); err != nil {
		return nil, nil, NewDocumentError(docx.DocumentPartName, err)
	}
	return &buf, report, nil
}

// Prepare prepares a template with a default engine.
func Prepare(r io.Reader) (*Template, error) {
	return New().Prepare(r)
}

// PrepareFile prepares a template from disk with a default engine.
func PrepareFile(path string) (*Template, error) {
	return New().PrepareFile(path)
}
