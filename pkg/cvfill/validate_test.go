package cvfill

import (
	"testing"
)

func TestParseRecordFullShape(t *testing.T) {
	raw := []byte(`{
		"candidate_name": "JANE DOE",
		"position": "QUALITY MANAGER",
		"total_experience_years": "8",
		"phone": "+1 555 0100",
		"email": "jane@example.com",
		"intro_paragraph": "Experienced professional.",
		"experiences": [
			{"company": "Atea Pharmaceuticals", "location": "Boston, MA", "role": "MANAGER, QUALITY SYSTEMS", "duration": "Sep 2019", "responsibilities": ["Task 1", "Task 2"]},
			{"company": "Acme", "location": "", "role": "Engineer", "duration": "Jan 2015 - Aug 2019", "responsibilities": []}
		],
		"education": [{"institution": "MIT", "duration": "2010 - 2014", "degree": "BSc"}],
		"certifications": [{"name": "PMP", "year": "2018", "provider": "PMI", "location": "Online"}],
		"technical_skills": ["GxP", "Veeva"],
		"language_skills": ["English - Fluent", "French - Basic"]
	}`)

	rec := ParseRecord(raw)

	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", rec.Name, "Jane Doe")
	}
	if rec.Position != "Quality Manager" {
		t.Errorf("Position = %q, want %q", rec.Position, "Quality Manager")
	}
	if len(rec.Experiences) != 2 {
		t.Fatalf("got %d experiences, want 2", len(rec.Experiences))
	}
	// First experience with a lone start date gets an implicit Present.
	if rec.Experiences[0].Duration != "SEP 2019 to Present" {
		t.Errorf("first duration = %q, want %q", rec.Experiences[0].Duration, "SEP 2019 to Present")
	}
	if rec.Experiences[0].Role != "Manager, Quality Systems" {
		t.Errorf("role = %q, want proper cased", rec.Experiences[0].Role)
	}
	if rec.Experiences[1].Duration != "JAN 2015 to AUG 2019" {
		t.Errorf("second duration = %q, want %q", rec.Experiences[1].Duration, "JAN 2015 to AUG 2019")
	}
	if rec.Education[0].Duration != "2010 to 2014" {
		t.Errorf("education duration = %q, want %q", rec.Education[0].Duration, "2010 to 2014")
	}
	if len(rec.LanguageSkills) != 2 {
		t.Errorf("got %d language skills, want 2", len(rec.LanguageSkills))
	}
}

func TestParseRecordDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "not json", raw: `this is not json`},
		{name: "wrong types", raw: `{"experiences": "none", "education": {"k": 1}, "certifications": 42, "language_skills": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseRecord([]byte(tt.raw))

			if rec.Name != NameNotProvided {
				t.Errorf("Name = %q, want sentinel %q", rec.Name, NameNotProvided)
			}
			if rec.Experiences == nil || len(rec.Experiences) != 0 {
				t.Errorf("Experiences = %v, want empty list", rec.Experiences)
			}
			if rec.Education == nil || len(rec.Education) != 0 {
				t.Errorf("Education = %v, want empty list", rec.Education)
			}
			if rec.Certifications == nil || len(rec.Certifications) != 0 {
				t.Errorf("Certifications = %v, want empty list", rec.Certifications)
			}
			if len(rec.LanguageSkills) != 1 || rec.LanguageSkills[0] != DefaultLanguageSkill {
				t.Errorf("LanguageSkills = %v, want [%q]", rec.LanguageSkills, DefaultLanguageSkill)
			}
		})
	}
}

func TestParseRecordKeepsNameSentinel(t *testing.T) {
	rec := ParseRecord([]byte(`{"candidate_name": "Candidate Name Not Provided"}`))
	if rec.Name != NameNotProvided {
		t.Errorf("Name = %q, want sentinel preserved", rec.Name)
	}
}

func TestParseRecordBackfillsExperienceFields(t *testing.T) {
	rec := ParseRecord([]byte(`{"experiences": [{"company": "Acme"}]}`))
	if len(rec.Experiences) != 1 {
		t.Fatalf("got %d experiences, want 1", len(rec.Experiences))
	}
	exp := rec.Experiences[0]
	if exp.Role != "" || exp.Duration != "" || exp.Location != "" {
		t.Errorf("missing fields should backfill empty, got %+v", exp)
	}
	if exp.Responsibilities == nil {
		t.Error("Responsibilities should be an empty list, not nil")
	}
	if exp.DataBearing() {
		t.Error("experience without role should not be data-bearing")
	}
}

func TestHasEducation(t *testing.T) {
	tests := []struct {
		name string
		rec  CandidateRecord
		want bool
	}{
		{name: "none", rec: CandidateRecord{}, want: false},
		{name: "empty entries", rec: CandidateRecord{Education: []Education{{}}}, want: false},
		{name: "degree only", rec: CandidateRecord{Education: []Education{{Degree: "BSc"}}}, want: true},
		{name: "institution only", rec: CandidateRecord{Education: []Education{{Institution: "MIT"}}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.HasEducation(); got != tt.want {
				t.Errorf("HasEducation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasEmployerExperience(t *testing.T) {
	rec := CandidateRecord{Experiences: []Experience{
		{Company: "Formation Bio", Role: "Engineer"},
	}}

	if !rec.HasEmployerExperience("formation", "bio") {
		t.Error("expected match on Formation Bio")
	}
	if rec.HasEmployerExperience("formation", "labs") {
		t.Error("did not expect match on formation+labs")
	}
	if (CandidateRecord{}).HasEmployerExperience("formation", "bio") {
		t.Error("empty record should not match")
	}
}

func TestEmptyRecordCarriesNameSentinel(t *testing.T) {
	rec := EmptyRecord()
	if rec.Name != NameNotProvided {
		t.Errorf("Name = %q, want %q", rec.Name, NameNotProvided)
	}
	if len(rec.LanguageSkills) != 1 || rec.LanguageSkills[0] != DefaultLanguageSkill {
		t.Errorf("LanguageSkills = %v, want default entry", rec.LanguageSkills)
	}
}

func TestAmendments(t *testing.T) {
	rec := EmptyRecord()
	rec.Experiences = []Experience{{Company: "Acme", Role: "Engineer"}}

	rec.PrependExperience(Experience{
		Company:  "Formation Bio",
		Role:     "Validation Lead, Quality",
		Duration: "Mar 2024 to Present",
	})

	if rec.Experiences[0].Company != "Formation Bio" {
		t.Errorf("first experience = %q, want prepended entry", rec.Experiences[0].Company)
	}
	if rec.Experiences[1].Company != "Acme" {
		t.Errorf("second experience = %q, want original entry", rec.Experiences[1].Company)
	}
	if rec.Position != "Validation Lead, Quality" {
		t.Errorf("Position = %q, want role of prepended entry", rec.Position)
	}

	rec.AppendEducation(Education{Institution: "MIT", Degree: "BSc"})
	if !rec.HasEducation() {
		t.Error("expected education after AppendEducation")
	}
}
