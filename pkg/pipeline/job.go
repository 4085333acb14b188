package pipeline

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-cvfill/pkg/cvfill"
)

// Job tracks one CV through the conversion flow.
type Job struct {
	SourcePath string
	Stage      Stage
	Record     cvfill.CandidateRecord

	// NeedsExperience and NeedsEducation mark the amendment stages this
	// job must pass through. They are set during extraction.
	NeedsExperience bool
	NeedsEducation  bool

	// ExtractErr records a degraded extraction. The job still renders;
	// the output just carries placeholder values for review.
	ExtractErr error

	Output     []byte
	OutputName string
	Report     *cvfill.RenderReport
}

// ExperienceForm is the caller-supplied current-employer experience.
// Responsibilities holds one item per line.
type ExperienceForm struct {
	Company          string
	JobTitle         string
	Location         string
	StartDate        string
	Responsibilities string
}

// EducationForm is a caller-supplied education entry.
type EducationForm struct {
	Institution string
	Duration    string
	Degree      string
}

// SetName overrides the candidate name during review. The name is
// normalized the same way extraction output is.
func (j *Job) SetName(name string) error {
	if j.Stage != StageReviewName {
		return errors.Errorf("cannot set name in stage %s", j.Stage)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("candidate name cannot be empty")
	}
	j.Record.Name = cvfill.FormatName(name)
	return nil
}

// ConfirmName finishes name review and moves the job to its next pending
// stage.
func (j *Job) ConfirmName() error {
	if j.Stage != StageReviewName {
		return errors.Errorf("cannot confirm name in stage %s", j.Stage)
	}
	return j.advance(j.nextPending())
}

// AddExperience prepends the supplied experience to the record, making its
// role the record's position, and moves on.
func (j *Job) AddExperience(form ExperienceForm) error {
	if j.Stage != StageFillExperience {
		return errors.Errorf("cannot add experience in stage %s", j.Stage)
	}
	if strings.TrimSpace(form.JobTitle) == "" {
		return errors.New("job title is required")
	}

	var responsibilities []string
	for _, line := range strings.Split(form.Responsibilities, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			responsibilities = append(responsibilities, line)
		}
	}

	j.Record.PrependExperience(cvfill.Experience{
		Company:          form.Company,
		Location:         form.Location,
		Role:             form.JobTitle,
		Duration:         form.StartDate + " to Present",
		Responsibilities: responsibilities,
	})
	j.NeedsExperience = false
	return j.advance(j.nextPending())
}

// SkipExperience declines the experience amendment and moves on.
func (j *Job) SkipExperience() error {
	if j.Stage != StageFillExperience {
		return errors.Errorf("cannot skip experience in stage %s", j.Stage)
	}
	j.NeedsExperience = false
	return j.advance(j.nextPending())
}

// AddEducation appends the supplied education entry and moves on.
func (j *Job) AddEducation(form EducationForm) error {
	if j.Stage != StageFillEducation {
		return errors.Errorf("cannot add education in stage %s", j.Stage)
	}
	if strings.TrimSpace(form.Institution) == "" {
		return errors.New("institution is required")
	}
	j.Record.AppendEducation(cvfill.Education{
		Institution: form.Institution,
		Duration:    form.Duration,
		Degree:      form.Degree,
	})
	j.NeedsEducation = false
	return j.advance(j.nextPending())
}

// SkipEducation declines the education amendment and moves on.
func (j *Job) SkipEducation() error {
	if j.Stage != StageFillEducation {
		return errors.Errorf("cannot skip education in stage %s", j.Stage)
	}
	j.NeedsEducation = false
	return j.advance(j.nextPending())
}

// nextPending picks the job's next stage after review or an amendment.
func (j *Job) nextPending() Stage {
	switch {
	case j.NeedsExperience:
		return StageFillExperience
	case j.NeedsEducation:
		return StageFillEducation
	default:
		return StageRender
	}
}
