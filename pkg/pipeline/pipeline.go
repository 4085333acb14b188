// Package pipeline drives CV files through ingestion, extraction, review
// and rendering. It is the flow behind both interactive front ends and the
// batch CLI.
package pipeline

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/benjaminschreck/go-cvfill/pkg/cvfill"
	"github.com/benjaminschreck/go-cvfill/pkg/extract"
	"github.com/benjaminschreck/go-cvfill/pkg/ingest"
)

// outputSuffix is appended to the sanitized candidate name.
const outputSuffix = "_CV.docx"

// employerTerms are the default substrings identifying the current
// employer in an experience's company name.
var employerTerms = []string{"formation", "bio"}

// Pipeline converts CV files with a shared extractor and template.
type Pipeline struct {
	extractor extract.Extractor
	template  *cvfill.Template
	terms     []string
	log       *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithEmployerTerms overrides the substrings used to detect an existing
// current-employer experience.
func WithEmployerTerms(terms ...string) Option {
	return func(p *Pipeline) { p.terms = terms }
}

// New builds a pipeline around an extractor and a prepared template.
func New(extractor extract.Extractor, template *cvfill.Template, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor: extractor,
		template:  template,
		terms:     employerTerms,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewJob starts a job for the CV at path.
func (p *Pipeline) NewJob(path string) *Job {
	return &Job{SourcePath: path, Stage: StageUpload}
}

// Extract reads the source file, extracts a record from it and works out
// which amendment stages the job needs. Extraction failures degrade to an
// empty record rather than failing the job; unreadable files are fatal.
func (p *Pipeline) Extract(ctx context.Context, job *Job) error {
	if err := job.advance(StageExtract); err != nil {
		return err
	}

	text, err := ingest.Read(ctx, job.SourcePath)
	if err != nil {
		return errors.Wrapf(err, "ingesting %s", job.SourcePath)
	}

	rec, err := p.extractor.Extract(ctx, text)
	if err != nil {
		job.ExtractErr = err
		p.log.Warn("extraction degraded, continuing with empty record",
			zap.String("source", job.SourcePath),
			zap.Error(err))
	}

	if rec.Name == "" || rec.Name == cvfill.NameNotProvided {
		if derived := cvfill.NameFromFilename(job.SourcePath); derived != "" {
			rec.Name = cvfill.FormatName(derived)
		}
	}

	job.Record = rec
	job.NeedsExperience = !rec.HasEmployerExperience(p.terms...)
	job.NeedsEducation = !rec.HasEducation()

	p.log.Info("extracted record",
		zap.String("source", job.SourcePath),
		zap.String("candidate", rec.Name),
		zap.Int("experiences", len(rec.Experiences)),
		zap.Bool("needs_experience", job.NeedsExperience),
		zap.Bool("needs_education", job.NeedsEducation))

	return job.advance(StageReviewName)
}

// Render fills the template with the job's record and stores the produced
// document on the job.
func (p *Pipeline) Render(job *Job) error {
	if job.Stage != StageRender {
		return errors.Errorf("cannot render in stage %s", job.Stage)
	}

	out, report, err := p.template.Render(job.Record)
	if err != nil {
		return errors.Wrapf(err, "rendering %s", job.SourcePath)
	}
	data, err := io.ReadAll(out)
	if err != nil {
		return errors.Wrapf(err, "reading rendered output for %s", job.SourcePath)
	}

	job.Output = data
	job.Report = report
	job.OutputName = cvfill.SafeFilename(job.Record.Name) + outputSuffix
	if err := job.advance(StageComplete); err != nil {
		return err
	}

	p.log.Info("rendered document",
		zap.String("source", job.SourcePath),
		zap.String("output", job.OutputName),
		zap.Int("rows_removed", report.RowsRemoved),
		zap.Int("paragraphs_removed", report.ParagraphsRemoved))
	for _, failure := range report.RowFailures {
		p.log.Warn("row deletion failed during render",
			zap.String("source", job.SourcePath),
			zap.Int("table", failure.TableIndex),
			zap.Int("row", failure.RowIndex))
	}
	return nil
}

// Answers pre-supplies the review answers for a non-interactive run. Zero
// values mean "accept the extracted name" and "skip the amendment".
type Answers struct {
	Name       string
	Experience *ExperienceForm
	Education  *EducationForm
}

// Process runs one CV through the whole flow without interactive review:
// the extracted name stands and amendment stages are skipped.
func (p *Pipeline) Process(ctx context.Context, path string) (*Job, error) {
	return p.ProcessWith(ctx, path, Answers{})
}

// ProcessWith runs one CV through the whole flow, applying the supplied
// answers wherever the job asks for input.
func (p *Pipeline) ProcessWith(ctx context.Context, path string, answers Answers) (*Job, error) {
	job := p.NewJob(path)
	if err := p.Extract(ctx, job); err != nil {
		return job, err
	}
	if answers.Name != "" {
		if err := job.SetName(answers.Name); err != nil {
			return job, err
		}
	}
	if err := job.ConfirmName(); err != nil {
		return job, err
	}
	if job.Stage == StageFillExperience {
		if answers.Experience != nil {
			if err := job.AddExperience(*answers.Experience); err != nil {
				return job, err
			}
		} else if err := job.SkipExperience(); err != nil {
			return job, err
		}
	}
	if job.Stage == StageFillEducation {
		if answers.Education != nil {
			if err := job.AddEducation(*answers.Education); err != nil {
				return job, err
			}
		} else if err := job.SkipEducation(); err != nil {
			return job, err
		}
	}
	if err := p.Render(job); err != nil {
		return job, err
	}
	return job, nil
}

// ProcessAll converts every path, isolating failures: a bad file yields a
// job with no output and the batch carries on.
func (p *Pipeline) ProcessAll(ctx context.Context, paths []string) []*Job {
	return p.ProcessAllWith(ctx, paths, Answers{})
}

// ProcessAllWith converts every path with the same pre-supplied answers.
func (p *Pipeline) ProcessAllWith(ctx context.Context, paths []string, answers Answers) []*Job {
	jobs := make([]*Job, 0, len(paths))
	for _, path := range paths {
		job, err := p.ProcessWith(ctx, path, answers)
		if err != nil {
			p.log.Error("conversion failed",
				zap.String("source", path),
				zap.Error(err))
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// WriteOutputs writes each completed job's document into dir, creating it
// if needed. Jobs without output are skipped.
func WriteOutputs(jobs []*Job, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "creating output directory %s", dir)
	}
	var merr cvfill.MultiError
	for _, job := range jobs {
		if len(job.Output) == 0 {
			continue
		}
		path := filepath.Join(dir, job.OutputName)
		if err := os.WriteFile(path, job.Output, 0o644); err != nil {
			merr.Add(errors.Wrapf(err, "writing %s", path))
		}
	}
	return merr.ErrorOrNil()
}

// ExportZip writes every completed job's document into one zip archive.
func ExportZip(w io.Writer, jobs []*Job) error {
	zw := zip.NewWriter(w)
	for _, job := range jobs {
		if len(job.Output) == 0 {
			continue
		}
		fw, err := zw.Create(job.OutputName)
		if err != nil {
			return errors.Wrapf(err, "creating zip entry %s", job.OutputName)
		}
		if _, err := fw.Write(job.Output); err != nil {
			return errors.Wrapf(err, "writing zip entry %s", job.OutputName)
		}
	}
	return errors.Wrap(zw.Close(), "closing zip archive")
}
