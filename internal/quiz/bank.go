package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned when adding to a category that does not exist.
	ErrUnknownCategory = errors.New("unknown question category")
	// ErrEmptyBank is returned when starting a game with no questions.
	ErrEmptyBank = errors.New("question bank is empty")
)

// Bank is the owned, append-only collection of questions. A Bank is not
// safe for concurrent use.
type Bank struct {
	byCategory map[Category][]Question
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{byCategory: make(map[Category][]Question, len(Categories))}
}

// DefaultBank returns a bank holding the built-in questions.
func DefaultBank() *Bank {
	b := NewBank()
	for _, q := range seedQuestions {
		if err := b.Add(q); err != nil {
			panic(fmt.Sprintf("quiz: invalid seed question: %v", err))
		}
	}
	return b
}

// Add appends a question to its category. The question is visible to the
// next draw.
func (b *Bank) Add(q Question) error {
	if !q.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	b.byCategory[q.Category] = append(b.byCategory[q.Category], q.clone())
	return nil
}

// Category returns copies of the questions in c.
func (b *Bank) Category(c Category) []Question {
	qs := b.byCategory[c]
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}

// All returns copies of every question in category order.
func (b *Bank) All() []Question {
	var out []Question
	for _, c := range Categories {
		out = append(out, b.Category(c)...)
	}
	return out
}

// Len is the total number of questions.
func (b *Bank) Len() int {
	n := 0
	for _, qs := range b.byCategory {
		n += len(qs)
	}
	return n
}

// Counts returns the number of questions per category.
func (b *Bank) Counts() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = len(b.byCategory[c])
	}
	return counts
}
