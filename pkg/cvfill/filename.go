package cvfill

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	unsafeFilenameRe = regexp.MustCompile(`[\\/*?:"<>|]`)
	fillerWordRe     = regexp.MustCompile(`(?i)\b(resume|cv|curriculum|vitae|curriculumvitae)\b`)
)

// SafeFilename replaces filesystem-unsafe characters with underscores. An
// empty result falls back to "output".
func SafeFilename(name string) string {
	cleaned := strings.TrimSpace(unsafeFilenameRe.ReplaceAllString(name, "_"))
	if cleaned == "" {
		return "output"
	}
	return cleaned
}

// NameFromFilename derives a candidate name from a source file name, for
// records whose extraction found none: drop the extension, treat
// underscores and hyphens as spaces, and remove filler words like "resume"
// or "cv".
func NameFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	base = fillerWordRe.ReplaceAllString(base, "")
	return strings.Join(strings.Fields(base), " ")
}
