package quiz

import (
	"fmt"
	"slices"
	"strings"
)

// Category groups questions by grammar topic.
type Category string

const (
	CategoryTense       Category = "tense"
	CategoryPreposition Category = "preposition"
	CategoryPhrasalVerb Category = "phrasal_verb"
	CategoryIdiom       Category = "idiom"
)

// Categories lists every category in bank order.
var Categories = []Category{
	CategoryTense,
	CategoryPreposition,
	CategoryPhrasalVerb,
	CategoryIdiom,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Label is the human readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryTense:
		return "Tenses"
	case CategoryPreposition:
		return "Prepositions"
	case CategoryPhrasalVerb:
		return "Phrasal verbs"
	case CategoryIdiom:
		return "Idioms"
	default:
		return string(c)
	}
}

const (
	minOptions = 2
	maxOptions = 4
)

// Question is a fill-in-the-blank multiple choice question.
type Question struct {
	Prompt      string
	Answer      string
	Options     []string
	Explanation string
	Category    Category
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question %s: %s", e.Field, e.Message)
}

// Validate checks the structural rules of a question: a prompt and answer,
// two to four options and the answer present among them exactly once.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{Field: "prompt", Message: "must not be empty"}
	}
	if q.Answer == "" {
		return &ValidationError{Field: "answer", Message: "must not be empty"}
	}
	if n := len(q.Options); n < minOptions || n > maxOptions {
		return &ValidationError{
			Field:   "options",
			Message: fmt.Sprintf("need %d-%d options, got %d", minOptions, maxOptions, n),
		}
	}
	count := 0
	for _, opt := range q.Options {
		if opt == q.Answer {
			count++
		}
	}
	if count != 1 {
		return &ValidationError{
			Field:   "options",
			Message: fmt.Sprintf("answer %q must appear exactly once, found %d", q.Answer, count),
		}
	}
	if !q.Category.Valid() {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", q.Category)}
	}
	return nil
}

// clone returns a copy that shares no slices with q.
func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}
