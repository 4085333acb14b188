package cvfill

import (
	"github.com/tidwall/gjson"
)

// ParseRecord turns raw LLM output into a validated CandidateRecord. The
// input shape is untrusted: missing fields, wrong types and legacy non-list
// representations all coerce to defaults rather than erroring. ParseRecord
// never fails; hopeless input just yields a mostly empty record.
func ParseRecord(data []byte) CandidateRecord {
	return ValidateRecord(gjson.ParseBytes(data))
}

// ValidateRecord applies the shape guarantees and normalization rules to an
// already parsed JSON value.
func ValidateRecord(v gjson.Result) CandidateRecord {
	rec := CandidateRecord{
		Name:                 v.Get("candidate_name").String(),
		Position:             FormatName(v.Get("position").String()),
		TotalExperienceYears: v.Get("total_experience_years").String(),
		Phone:                v.Get("phone").String(),
		Email:                v.Get("email").String(),
		Intro:                v.Get("intro_paragraph").String(),
		Experiences:          []Experience{},
		Education:            []Education{},
		Certifications:       []Certification{},
		TechnicalSkills:      stringList(v.Get("technical_skills")),
		LanguageSkills:       stringList(v.Get("language_skills")),
	}

	// A missing name stays a recognizable sentinel so the filename fallback
	// can replace it later.
	if rec.Name == "" {
		rec.Name = NameNotProvided
	}
	rec.Name = FormatName(rec.Name)

	if v.Get("experiences").IsArray() {
		for i, e := range v.Get("experiences").Array() {
			rec.Experiences = append(rec.Experiences, Experience{
				Company:          e.Get("company").String(),
				Location:         e.Get("location").String(),
				Role:             FormatName(e.Get("role").String()),
				Duration:         FormatDuration(e.Get("duration").String(), i == 0),
				Responsibilities: stringList(e.Get("responsibilities")),
			})
		}
	}

	if v.Get("education").IsArray() {
		for _, e := range v.Get("education").Array() {
			edu := Education{
				Institution: e.Get("institution").String(),
				Duration:    e.Get("duration").String(),
				Degree:      e.Get("degree").String(),
			}
			if edu.Duration != "" {
				edu.Duration = FormatDuration(edu.Duration, false)
			}
			rec.Education = append(rec.Education, edu)
		}
	}

	if v.Get("certifications").IsArray() {
		for _, c := range v.Get("certifications").Array() {
			rec.Certifications = append(rec.Certifications, Certification{
				Name:     c.Get("name").String(),
				Year:     c.Get("year").String(),
				Provider: c.Get("provider").String(),
				Location: c.Get("location").String(),
			})
		}
	}

	if len(rec.LanguageSkills) == 0 {
		rec.LanguageSkills = []string{DefaultLanguageSkill}
	}
	return rec
}

func stringList(v gjson.Result) []string {
	out := []string{}
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
