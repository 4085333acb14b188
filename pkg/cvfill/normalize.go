package cvfill

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ongoingTerms are the phrases treated as "still employed" when they make up
// an entire date field.
var ongoingTerms = map[string]bool{
	"present":   true,
	"current":   true,
	"ongoing":   true,
	"till date": true,
	"now":       true,
	"till now":  true,
}

var (
	monthWordDateRe  = regexp.MustCompile(`(?i)(\w{3,})[- /](\d{4})`)
	monthNumDateRe   = regexp.MustCompile(`(\d{1,2})[/-](\d{4})`)
	monthSpaceDateRe = regexp.MustCompile(`(\w+)\s+(\d{4})`)
	monthCommaDateRe = regexp.MustCompile(`(\w+),?\s+(\d{4})`)

	hyphenSplitRe = regexp.MustCompile(`\s*-\s*`)
	dashSplitRe   = regexp.MustCompile(`\s*[-–—]\s*`)
	monthTokenRe  = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)
	abbrYearRe    = regexp.MustCompile(`([A-Z]{3})-?(\d{4})`)
)

var monthAbbrs = []string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// FormatDate normalizes a single date to "MMM YYYY". Ongoing phrases become
// "Present"; anything unrecognized passes through unchanged.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	if ongoingTerms[strings.ToLower(date)] {
		return "Present"
	}

	if m := monthWordDateRe.FindStringSubmatch(date); m != nil {
		return upper3(m[1]) + " " + m[2]
	}
	if m := monthNumDateRe.FindStringSubmatch(date); m != nil {
		return monthAbbr(m[1]) + " " + m[2]
	}
	if m := monthSpaceDateRe.FindStringSubmatch(date); m != nil {
		return upper3(m[1]) + " " + m[2]
	}
	if m := monthCommaDateRe.FindStringSubmatch(date); m != nil {
		return upper3(m[1]) + " " + m[2]
	}
	return date
}

// upper3 uppercases the first three characters of a word and drops the rest.
func upper3(word string) string {
	runes := []rune(word)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// monthAbbr converts a numeric month ("9", "09") to its abbreviation. Values
// outside 1..12 come back zero-padded, not abbreviated.
func monthAbbr(num string) string {
	padded := num
	if len(padded) < 2 {
		padded = "0" + padded
	}
	n, err := strconv.Atoi(strings.TrimLeft(padded, "0"))
	if err == nil && n >= 1 && n <= 12 {
		return monthAbbrs[n-1]
	}
	return padded
}

// FormatDuration normalizes an employment duration to "MMM YYYY to MMM YYYY"
// form. A lone start date on the first (current) position gets "to Present"
// appended; a lone date elsewhere and anything with more than one separator
// pass through unchanged.
func FormatDuration(duration string, isFirst bool) string {
	if duration == "" {
		return ""
	}

	// Ongoing positions written as "Sep 2019 - Present" keep their start
	// date and the literal Present.
	if strings.Contains(duration, " - Present") || strings.Contains(duration, "- Present") {
		parts := hyphenSplitRe.Split(duration, -1)
		start := strings.TrimSpace(parts[0])
		start = monthTokenRe.ReplaceAllStringFunc(start, strings.ToUpper)
		start = abbrYearRe.ReplaceAllString(start, "${1} ${2}")
		return start + " to Present"
	}

	parts := dashSplitRe.Split(duration, -1)
	switch {
	case len(parts) == 2:
		start := FormatDate(strings.TrimSpace(parts[0]))
		end := FormatDate(strings.TrimSpace(parts[1]))
		return start + " to " + end
	case len(parts) == 1 && isFirst:
		start := FormatDate(strings.TrimSpace(parts[0]))
		if start != "" && start != "Present" {
			return start + " to Present"
		}
		return start
	}
	return duration
}

// FormatName converts ALL-CAPS name words to capitalized form. Words that
// are not fully uppercase, and single letters, stay as written.
func FormatName(name string) string {
	if name == "" {
		return ""
	}
	words := strings.Fields(name)
	for i, word := range words {
		if len([]rune(word)) > 1 && isUpperWord(word) {
			words[i] = capitalize(word)
		}
	}
	return strings.Join(words, " ")
}

func isUpperWord(word string) bool {
	hasUpper := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func capitalize(word string) string {
	runes := []rune(word)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if i == 0 {
			out[i] = unicode.ToUpper(r)
		} else {
			out[i] = unicode.ToLower(r)
		}
	}
	return string(out)
}
