package cvfill

import "testing"

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "Jane Doe", want: "Jane Doe"},
		{name: "colon", in: "Jane Doe: Resume", want: "Jane Doe_ Resume"},
		{name: "slashes", in: "a/b\\c", want: "a_b_c"},
		{name: "wildcards", in: "who?*", want: "who__"},
		{name: "quotes and angles", in: `<"name">`, want: "__name__"},
		{name: "pipe", in: "a|b", want: "a_b"},
		{name: "empty", in: "", want: "output"},
		{name: "whitespace only", in: "   ", want: "output"},
		{name: "unicode kept", in: "José Álvarez", want: "José Álvarez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.in); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "underscores", in: "jane_doe_resume.pdf", want: "jane doe"},
		{name: "hyphens", in: "John-Smith-CV.docx", want: "John Smith"},
		{name: "filler only", in: "resume.docx", want: ""},
		{name: "cv word kept inside token", in: "mcveigh.txt", want: "mcveigh"},
		{name: "path stripped", in: "/tmp/uploads/Anna_Lee_CV.pdf", want: "Anna Lee"},
		{name: "mixed case filler", in: "Jane Doe Curriculum Vitae.docx", want: "Jane Doe"},
		{name: "no extension", in: "jane doe", want: "jane doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameFromFilename(tt.in); got != tt.want {
				t.Errorf("NameFromFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
