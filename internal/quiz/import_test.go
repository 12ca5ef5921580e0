package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlQuestions = `
- category: tense
  question: "She _____ (study) all night for the exam."
  answer: had been studying
  options: [studied, has studied, had been studying, was studying]
  explanation: Past perfect continuous tense is used for actions that continued up until another point in the past.
- category: idiom
  question: "The exam was a _____ of cake."
  answer: piece
  options: [piece, slice]
  explanation: "'A piece of cake' means something very easy."
`

func TestImport_YAML(t *testing.T) {
	b := DefaultBank()
	n, err := b.Import(strings.NewReader(yamlQuestions), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 13, b.Len())
	assert.Equal(t, 4, b.Counts()[CategoryTense])
}

func TestImport_JSON(t *testing.T) {
	doc := `[{"category":"preposition","question":"He is good _____ maths.","answer":"at","options":["at","in","on"],"explanation":"'Good at' a subject."}]`
	b := NewBank()
	n, err := b.Import(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "at", b.Category(CategoryPreposition)[0].Answer)
}

func TestImport_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"empty list", `[]`},
		{"unknown category", `[{"category":"slang","question":"q _____","answer":"a","options":["a","b"],"explanation":""}]`},
		{"too many options", `[{"category":"idiom","question":"q _____","answer":"a","options":["a","b","c","d","e"],"explanation":""}]`},
		{"extra field", `[{"category":"idiom","question":"q _____","answer":"a","options":["a","b"],"explanation":"","hint":"x"}]`},
		{"answer not in options", `[{"category":"idiom","question":"q _____","answer":"z","options":["a","b"],"explanation":""}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBank()
			_, err := b.Import(strings.NewReader(tt.doc), FormatJSON)
			assert.Error(t, err)
			assert.Equal(t, 11, b.Len(), "failed import must not change the bank")
		})
	}
}

func TestImport_AllOrNothing(t *testing.T) {
	doc := `[
	  {"category":"idiom","question":"ok _____","answer":"a","options":["a","b"],"explanation":""},
	  {"category":"idiom","question":"bad _____","answer":"a","options":["a","a"],"explanation":""}
	]`
	b := DefaultBank()
	_, err := b.Import(strings.NewReader(doc), FormatJSON)
	require.Error(t, err)
	assert.Equal(t, 11, b.Len())
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("extra.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("/tmp/Q.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("questions.txt")
	assert.Error(t, err)
}
