package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-cvfill/pkg/cvfill"
	"github.com/benjaminschreck/go-cvfill/pkg/extract"
	"github.com/benjaminschreck/go-cvfill/pkg/pipeline"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templatePath string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var zipPath string

//nolint:gochecknoglobals // Cobra boilerplate
var timeout time.Duration

//nolint:gochecknoglobals // Cobra boilerplate
var candidateName string

//nolint:gochecknoglobals // Cobra boilerplate
var jobTitle string

//nolint:gochecknoglobals // Cobra boilerplate
var department string

//nolint:gochecknoglobals // Cobra boilerplate
var startDate string

//nolint:gochecknoglobals // Cobra boilerplate
var institution string

//nolint:gochecknoglobals // Cobra boilerplate
var degree string

//nolint:gochecknoglobals // Cobra boilerplate
var eduDuration string

//nolint:gochecknoglobals // Cobra boilerplate
var convertCmd = &cobra.Command{
	Use:   "convert <cv-file>...",
	Short: "Convert CVs into filled template documents",
	Long: `Convert one or more CV files (.pdf, .docx, .doc or .txt) into documents
filled from the configured template. Each CV produces one .docx named after
the candidate. Failures are isolated: a bad file is reported and the batch
carries on.

Example:
  cvfill convert jane_doe.pdf
  cvfill convert cvs/*.pdf --output-dir converted --zip converted/all.zip`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&templatePath, "template", "", "Template .docx (default from config)")
	convertCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	convertCmd.Flags().StringVar(&zipPath, "zip", "", "Also write all outputs into this zip archive")
	convertCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Overall timeout for the batch")
	convertCmd.Flags().StringVar(&candidateName, "name", "", "Override the extracted candidate name")
	convertCmd.Flags().StringVar(&jobTitle, "job-title", "", "Current job title to prepend when the CV lacks an employer entry")
	convertCmd.Flags().StringVar(&department, "department", "", "Department appended to --job-title")
	convertCmd.Flags().StringVar(&startDate, "start-date", "", "Start date of the current position (e.g. \"Sep 2024\")")
	convertCmd.Flags().StringVar(&institution, "institution", "", "Education institution to append when the CV lacks one")
	convertCmd.Flags().StringVar(&degree, "degree", "", "Degree for --institution")
	convertCmd.Flags().StringVar(&eduDuration, "edu-duration", "", "Duration for --institution (e.g. \"2015 - 2019\")")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if templatePath != "" {
		cfg.TemplatePath = templatePath
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer func() { _ = log.Sync() }()

	tpl, err := cvfill.New(cvfill.WithLogger(log)).PrepareFile(cfg.TemplatePath)
	if err != nil {
		return errors.Wrapf(err, "preparing template %s", cfg.TemplatePath)
	}

	extractor := extract.NewClaude(cfg.AnthropicAPIKey, cfg.Model, cfg.MaxTokens, log)
	p := pipeline.New(extractor, tpl,
		pipeline.WithLogger(log),
		pipeline.WithEmployerTerms(employerTerms(cfg.EmployerCompany)...))

	jobs := p.ProcessAllWith(ctx, args, buildAnswers(cfg.EmployerCompany))
	if err = pipeline.WriteOutputs(jobs, cfg.OutputDir); err != nil {
		return err
	}

	if zipPath != "" {
		var zf *os.File
		zf, err = os.Create(zipPath)
		if err != nil {
			return errors.Wrapf(err, "creating %s", zipPath)
		}
		defer func() { _ = zf.Close() }()
		if err = pipeline.ExportZip(zf, jobs); err != nil {
			return err
		}
	}

	converted := 0
	for _, job := range jobs {
		if len(job.Output) == 0 {
			fmt.Printf("FAILED   %s\n", job.SourcePath)
			continue
		}
		converted++
		fmt.Printf("OK       %s -> %s\n", job.SourcePath, job.OutputName)
		if job.ExtractErr != nil {
			fmt.Printf("         extraction degraded, review the output: %v\n", job.ExtractErr)
		}
	}
	fmt.Printf("%d of %d CV(s) converted into %s\n", converted, len(jobs), cfg.OutputDir)

	if converted == 0 {
		return errors.New("no CVs could be converted")
	}
	return nil
}

// buildAnswers turns the amendment flags into pipeline answers. Amendments
// are only offered when --job-title or --institution are set.
func buildAnswers(employerCompany string) pipeline.Answers {
	answers := pipeline.Answers{Name: candidateName}
	if jobTitle != "" {
		role := jobTitle
		if department != "" {
			role = jobTitle + ", " + department
		}
		company := employerCompany
		if company == "" {
			company = "Formation Bio"
		}
		answers.Experience = &pipeline.ExperienceForm{
			Company:   company,
			JobTitle:  role,
			StartDate: startDate,
		}
	}
	if institution != "" {
		answers.Education = &pipeline.EducationForm{
			Institution: institution,
			Duration:    eduDuration,
			Degree:      degree,
		}
	}
	return answers
}

// employerTerms lowercases the configured employer name into the word
// fragments matched against experience companies.
func employerTerms(company string) []string {
	terms := strings.Fields(strings.ToLower(company))
	if len(terms) == 0 {
		terms = []string{"formation", "bio"}
	}
	return terms
}
