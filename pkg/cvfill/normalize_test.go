package cvfill

import (
	"strings"
	"testing"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "all caps to proper", input: "JOHN DOE", want: "John Doe"},
		{name: "all caps second", input: "JANE SMITH", want: "Jane Smith"},
		{name: "already proper unchanged", input: "John Doe", want: "John Doe"},
		{name: "mixed case preserved", input: "Ludwig van BEETHOVEN", want: "Ludwig van Beethoven"},
		{name: "single letter initial kept", input: "JOHN Q PUBLIC", want: "John Q Public"},
		{name: "empty", input: "", want: ""},
		{name: "extra whitespace collapsed", input: "  JOHN   DOE ", want: "John Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatName(tt.input); got != tt.want {
				t.Errorf("FormatName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "month dash year", input: "Sep-2015", want: "SEP 2015"},
		{name: "month dash year january", input: "Jan-2020", want: "JAN 2020"},
		{name: "lowercase present", input: "present", want: "Present"},
		{name: "capitalized present", input: "Present", want: "Present"},
		{name: "till date", input: "till date", want: "Present"},
		{name: "current", input: "current", want: "Present"},
		{name: "ongoing", input: "ongoing", want: "Present"},
		{name: "now", input: "now", want: "Present"},
		{name: "till now", input: "till now", want: "Present"},
		{name: "numeric month slash", input: "09/2015", want: "SEP 2015"},
		{name: "numeric month dash", input: "01-2020", want: "JAN 2020"},
		{name: "out of range numeric month", input: "13/2015", want: "13 2015"},
		{name: "full month name", input: "September 2015", want: "SEP 2015"},
		{name: "month comma year", input: "Sep, 2015", want: "SEP 2015"},
		{name: "bare year passes through", input: "2019", want: "2019"},
		{name: "free text passes through", input: "last summer", want: "last summer"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.input); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDurationOngoing(t *testing.T) {
	got := FormatDuration("Sep-2015 - Present", false)
	if !strings.Contains(got, "Present") {
		t.Errorf("FormatDuration(%q) = %q, want Present kept", "Sep-2015 - Present", got)
	}
	if !strings.Contains(got, "SEP") {
		t.Errorf("FormatDuration(%q) = %q, want uppercase month", "Sep-2015 - Present", got)
	}
}

func TestFormatDurationRange(t *testing.T) {
	got := FormatDuration("Jan 2020 - Dec 2023", false)
	if got != "JAN 2020 to DEC 2023" {
		t.Errorf("FormatDuration range = %q, want %q", got, "JAN 2020 to DEC 2023")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isFirst bool
		want    string
	}{
		{name: "two part range", input: "2019 - 2023", want: "2019 to 2023"},
		{name: "en dash range", input: "Sep 2019 – Mar 2021", want: "SEP 2019 to MAR 2021"},
		{name: "single date first entry", input: "Sep 2019", isFirst: true, want: "SEP 2019 to Present"},
		{name: "single date later entry unchanged", input: "Sep 2019", isFirst: false, want: "Sep 2019"},
		{name: "lowercase present end", input: "2019 - present", want: "2019 to Present"},
		{name: "explicit present suffix", input: "Sep 2019 - Present", want: "SEP 2019 to Present"},
		{name: "present only first entry", input: "present", isFirst: true, want: "Present"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.input, tt.isFirst); got != tt.want {
				t.Errorf("FormatDuration(%q, %v) = %q, want %q", tt.input, tt.isFirst, got, tt.want)
			}
		})
	}
}
