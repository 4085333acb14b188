package cvfill

import "strings"

// NameNotProvided is the stand-in name used until a real one is supplied,
// either by extraction or by the filename fallback.
const NameNotProvided = "Candidate Name Not Provided"

// DefaultLanguageSkill fills the language list when extraction found none.
const DefaultLanguageSkill = "English - Fluent"

// Render capacities. The template vocabulary defines tokens up to these slot
// counts; entries beyond them have no tokens and are silently unrenderable.
const (
	MaxExperiences          = 20
	MaxResponsibilities     = 100
	MaxEducationEntries     = 5
	MaxCertificationEntries = 10
)

// CandidateRecord is the validated, fully shaped record a render consumes.
// After validation every list is non-nil and every field is present, so
// downstream code never tests for missing keys.
type CandidateRecord struct {
	Name                 string          `json:"candidate_name"`
	Position             string          `json:"position"`
	TotalExperienceYears string          `json:"total_experience_years"`
	Phone                string          `json:"phone"`
	Email                string          `json:"email"`
	Intro                string          `json:"intro_paragraph"`
	Experiences          []Experience    `json:"experiences"`
	Education            []Education     `json:"education"`
	Certifications       []Certification `json:"certifications"`
	TechnicalSkills      []string        `json:"technical_skills"`
	LanguageSkills       []string        `json:"language_skills"`
}

// Experience is one employment entry.
type Experience struct {
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// DataBearing reports whether the entry has enough data to keep its template
// section: both company and role must be non-empty.
func (e Experience) DataBearing() bool {
	return e.Company != "" && e.Role != ""
}

// Education is one degree entry.
type Education struct {
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Degree      string `json:"degree"`
}

// Certification is one certification entry.
type Certification struct {
	Name     string `json:"name"`
	Year     string `json:"year"`
	Provider string `json:"provider"`
	Location string `json:"location"`
}

// EmptyRecord is the fallback when extraction fails outright: well formed,
// all lists present, default language skill set, sentinel name so the
// filename fallback can still fire.
func EmptyRecord() CandidateRecord {
	return CandidateRecord{
		Name:            NameNotProvided,
		Experiences:     []Experience{},
		Education:       []Education{},
		Certifications:  []Certification{},
		TechnicalSkills: []string{},
		LanguageSkills:  []string{DefaultLanguageSkill},
	}
}

// HasEducation reports whether any entry carries a degree or institution.
func (r CandidateRecord) HasEducation() bool {
	for _, edu := range r.Education {
		if edu.Degree != "" || edu.Institution != "" {
			return true
		}
	}
	return false
}

// HasEmployerExperience reports whether any experience's company contains
// every one of the given substrings, case-insensitively. The pipeline uses
// it to detect a specific employer whose entry candidates routinely omit.
func (r CandidateRecord) HasEmployerExperience(substrings ...string) bool {
	for _, exp := range r.Experiences {
		company := strings.ToLower(exp.Company)
		all := true
		for _, sub := range substrings {
			if !strings.Contains(company, strings.ToLower(sub)) {
				all = false
				break
			}
		}
		if all && len(substrings) > 0 {
			return true
		}
	}
	return false
}

// PrependExperience puts exp at the front of the experience list and, when
// the new entry carries a role, makes that role the record's position.
func (r *CandidateRecord) PrependExperience(exp Experience) {
	r.Experiences = append([]Experience{exp}, r.Experiences...)
	if exp.Role != "" {
		r.Position = exp.Role
	}
}

// AppendEducation adds edu to the end of the education list.
func (r *CandidateRecord) AppendEducation(edu Education) {
	r.Education = append(r.Education, edu)
}
