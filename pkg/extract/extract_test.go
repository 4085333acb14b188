package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReply = `{
  "candidate_name": "JANE DOE",
  "position": "Quality Manager",
  "experiences": [
    {"company": "Acme", "location": "Boston, MA", "role": "Engineer", "duration": "Sep 2019 - Present", "responsibilities": ["Did things"]}
  ],
  "technical_skills": ["GxP"],
  "language_skills": []
}`

func TestParseResponsePlainJSON(t *testing.T) {
	rec, err := parseResponse(sampleReply)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "Quality Manager", rec.Position)
	require.Len(t, rec.Experiences, 1)
	assert.Equal(t, "SEP 2019 to Present", rec.Experiences[0].Duration)
	assert.Equal(t, []string{"English - Fluent"}, rec.LanguageSkills)
}

func TestParseResponseCodeFenced(t *testing.T) {
	for _, fence := range []string{"```json\n" + sampleReply + "\n```", "```\n" + sampleReply + "\n```"} {
		rec, err := parseResponse(fence)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", rec.Name)
	}
}

func TestParseResponseSurroundingProse(t *testing.T) {
	reply := "Here is the extracted data:\n" + sampleReply + "\nLet me know if you need anything else."
	rec, err := parseResponse(reply)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
}

func TestParseResponseNoJSON(t *testing.T) {
	rec, err := parseResponse("I could not parse this CV.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
	assert.Equal(t, "Candidate Name Not Provided", rec.Name)
	assert.Empty(t, rec.Experiences)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "no fence", in: `{"a":1}`, want: `{"a":1}`},
		{name: "padded", in: "  {\"a\":1}  ", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestNewClaudeDefaults(t *testing.T) {
	e := NewClaude("key", "", 0, nil)
	assert.Equal(t, DefaultModel, string(e.model))
	assert.Equal(t, int64(DefaultMaxTokens), e.maxTokens)

	custom := NewClaude("key", "claude-opus-4-20250514", 1024, nil)
	assert.Equal(t, "claude-opus-4-20250514", string(custom.model))
	assert.Equal(t, int64(1024), custom.maxTokens)
}

func TestPromptContainsCVText(t *testing.T) {
	prompt := buildPrompt("the cv body")
	assert.True(t, strings.Contains(prompt, "the cv body"))
	assert.True(t, strings.Contains(prompt, "RETURN ONLY THE JSON"))
}
