package pipeline

import "github.com/pkg/errors"

// Stage is a step in the conversion flow. Jobs move strictly forward;
// amendment stages are skipped when the record already has the data.
type Stage string

const (
	// StageUpload is the initial state: the source file is known but
	// unread.
	StageUpload Stage = "upload"
	// StageExtract covers reading the source and calling the model.
	StageExtract Stage = "extract"
	// StageReviewName lets the caller confirm or correct the extracted
	// candidate name.
	StageReviewName Stage = "review_name"
	// StageFillExperience collects the current-employer experience when
	// the CV does not already list it.
	StageFillExperience Stage = "fill_experience"
	// StageFillEducation collects an education entry when the CV has
	// none.
	StageFillEducation Stage = "fill_education"
	// StageRender fills the template.
	StageRender Stage = "render"
	// StageComplete means the output document is ready.
	StageComplete Stage = "complete"
)

var nextStages = map[Stage][]Stage{
	StageUpload:         {StageExtract},
	StageExtract:        {StageReviewName},
	StageReviewName:     {StageFillExperience, StageFillEducation, StageRender},
	StageFillExperience: {StageFillEducation, StageRender},
	StageFillEducation:  {StageRender},
	StageRender:         {StageComplete},
}

// advance moves the job to target, enforcing forward-only transitions.
func (j *Job) advance(target Stage) error {
	for _, allowed := range nextStages[j.Stage] {
		if allowed == target {
			j.Stage = target
			return nil
		}
	}
	return errors.Errorf("invalid stage transition %s -> %s for %s", j.Stage, target, j.SourcePath)
}
