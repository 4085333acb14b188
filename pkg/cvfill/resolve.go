package cvfill

import (
	"fmt"
	"strings"
)

// ReplacementKind says what to do with a token occurrence.
type ReplacementKind int

const (
	// ReplaceLiteral substitutes plain text.
	ReplaceLiteral ReplacementKind = iota
	// ReplaceBold substitutes text rendered as its own bold run.
	ReplaceBold
	// DeleteLine blanks the token; the paragraph goes too if nothing but
	// whitespace or a lone bullet glyph remains.
	DeleteLine
	// DeleteSection removes the whole paragraph or table row carrying the
	// token.
	DeleteSection
)

// Replacement is the typed action for one token. Structural actions travel
// as values of this type rather than marker substrings spliced into text, so
// document content can never collide with them.
type Replacement struct {
	Kind ReplacementKind
	Text string
}

func literal(s string) Replacement  { return Replacement{Kind: ReplaceLiteral, Text: s} }
func boldText(s string) Replacement { return Replacement{Kind: ReplaceBold, Text: s} }

var (
	deleteLine    = Replacement{Kind: DeleteLine}
	deleteSection = Replacement{Kind: DeleteSection}
)

// Resolution is the complete token mapping for one record, plus the set of
// experience slots that have data. Tokens carry their {{ }} delimiters, so
// EXP1_RESP1 can never shadow EXP1_RESP10.
type Resolution struct {
	Replacements map[string]Replacement
	FilledSlots  map[int]bool
}

// Resolve builds the mapping covering every token within the render
// capacities. Experience slots without a data-bearing entry resolve to
// section deletion; education and certification slots without data resolve
// to line deletion.
func Resolve(rec CandidateRecord) Resolution {
	res := Resolution{
		Replacements: make(map[string]Replacement, 64),
		FilledSlots:  make(map[int]bool, MaxExperiences),
	}
	m := res.Replacements

	m["{{CANDIDATE_NAME}}"] = literal(rec.Name)
	m["{{POSITION}}"] = literal(rec.Position)
	m["{{TOTAL_EXPERIENCE_YEARS}}"] = literal(rec.TotalExperienceYears)
	m["{{PHONE}}"] = literal(rec.Phone)
	m["{{EMAIL}}"] = literal(rec.Email)
	m["{{INTRO_PARAGRAPH}}"] = literal(rec.Intro)
	m["{{TECHNICAL_SKILLS_LIST}}"] = literal(bulletList(rec.TechnicalSkills))
	m["{{LANGUAGE_SKILLS_LIST}}"] = literal(languageList(rec.LanguageSkills))

	for slot := 1; slot <= MaxExperiences; slot++ {
		var exp Experience
		if slot <= len(rec.Experiences) {
			exp = rec.Experiences[slot-1]
		}
		if !exp.DataBearing() {
			m[expToken(slot, "COMPANY")] = deleteSection
			m[expToken(slot, "ROLE")] = deleteSection
			m[expToken(slot, "DURATION")] = deleteSection
			m[expToken(slot, "LOCATION")] = deleteSection
			for j := 1; j <= MaxResponsibilities; j++ {
				m[respToken(slot, j)] = deleteSection
			}
			continue
		}

		res.FilledSlots[slot] = true
		m[expToken(slot, "COMPANY")] = boldText(exp.Company)
		m[expToken(slot, "ROLE")] = literal(exp.Role)
		m[expToken(slot, "DURATION")] = literal(exp.Duration)
		location := exp.Location
		if strings.TrimSpace(location) == "" {
			location = "Location Not Specified"
		}
		m[expToken(slot, "LOCATION")] = literal(location)

		for j := 1; j <= MaxResponsibilities; j++ {
			if j <= len(exp.Responsibilities) {
				m[respToken(slot, j)] = literal(exp.Responsibilities[j-1])
			} else {
				m[respToken(slot, j)] = deleteLine
			}
		}
	}

	for slot := 1; slot <= MaxEducationEntries; slot++ {
		if slot <= len(rec.Education) {
			edu := rec.Education[slot-1]
			m[eduToken(slot, "INSTITUTION")] = literal(edu.Institution)
			duration := edu.Duration
			if strings.TrimSpace(duration) == "" {
				duration = "Dates Not Available"
			}
			m[eduToken(slot, "DURATION")] = literal(duration)
			m[eduToken(slot, "DEGREE")] = literal(edu.Degree)
		} else {
			m[eduToken(slot, "INSTITUTION")] = deleteLine
			m[eduToken(slot, "DURATION")] = deleteLine
			m[eduToken(slot, "DEGREE")] = deleteLine
		}
	}

	for slot := 1; slot <= MaxCertificationEntries; slot++ {
		if slot <= len(rec.Certifications) {
			cert := rec.Certifications[slot-1]
			m[certToken(slot, "NAME")] = literal(cert.Name)
			year := cert.Year
			if strings.TrimSpace(year) == "" {
				year = "Year Not Available"
			}
			m[certToken(slot, "YEAR")] = literal(year)
			provider := cert.Provider
			if strings.TrimSpace(provider) == "" {
				provider = "Provider Not Specified"
			}
			m[certToken(slot, "PROVIDER")] = literal(provider)
			m[certToken(slot, "LOCATION")] = literal(cert.Location)
		} else {
			m[certToken(slot, "NAME")] = deleteLine
			m[certToken(slot, "YEAR")] = deleteLine
			m[certToken(slot, "PROVIDER")] = deleteLine
			m[certToken(slot, "LOCATION")] = deleteLine
		}
	}

	return res
}

// MentionsExperienceSlot reports whether text references the given
// experience slot's tokens: COMPANY, ROLE, DURATION or any responsibility.
func MentionsExperienceSlot(text string, slot int) bool {
	return strings.Contains(text, expToken(slot, "COMPANY")) ||
		strings.Contains(text, expToken(slot, "ROLE")) ||
		strings.Contains(text, expToken(slot, "DURATION")) ||
		strings.Contains(text, fmt.Sprintf("{{EXP%d_RESP", slot))
}

func expToken(slot int, field string) string {
	return fmt.Sprintf("{{EXP%d_%s}}", slot, field)
}

func respToken(slot, n int) string {
	return fmt.Sprintf("{{EXP%d_RESP%d}}", slot, n)
}

func eduToken(slot int, field string) string {
	return fmt.Sprintf("{{EDU%d_%s}}", slot, field)
}

func certToken(slot int, field string) string {
	return fmt.Sprintf("{{CERT%d_%s}}", slot, field)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func languageList(items []string) string {
	if len(items) == 0 {
		return DefaultLanguageSkill
	}
	return strings.Join(items, ", ")
}
