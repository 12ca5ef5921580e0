package quiz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleQuestionGame(t *testing.T) *Game {
	t.Helper()
	b := NewBank()
	require.NoError(t, b.Add(Question{
		Category:    CategoryPreposition,
		Prompt:      "The book is _____ the table.",
		Answer:      "on",
		Options:     []string{"in", "on"},
		Explanation: "'On' is used for surfaces.",
	}))
	return NewGame(b, testRNG())
}

func TestConsole_RepromptsUntilValidChoice(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("abc\n7\n0\n1\nmaybe\nn\n")

	err := NewConsole(singleQuestionGame(t), in, &out).Run()
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "WELCOME TO THE VOCABULARY FILL-IN-THE-BLANKS GAME!")
	assert.Contains(t, text, "Question 1 of 1:")
	assert.Contains(t, text, "Enter your choice (1-2): ")
	assert.Contains(t, text, "Please enter a valid number.")
	assert.Equal(t, 2, strings.Count(text, "Please enter a number between 1 and 2."))
	assert.Contains(t, text, "Explanation: 'On' is used for surfaces.")
	assert.Contains(t, text, "GAME OVER! Your final score: ")
	assert.Contains(t, text, "Please enter 'yes' or 'no'.")
	assert.Contains(t, text, "Thank you for playing! Goodbye!")
}

func TestConsole_PlayAgain(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\nYES\n2\nno\n")

	require.NoError(t, NewConsole(singleQuestionGame(t), in, &out).Run())
	assert.Equal(t, 2, strings.Count(out.String(), "GAME OVER!"))
}

func TestConsole_InputClosed(t *testing.T) {
	var out bytes.Buffer
	err := NewConsole(singleQuestionGame(t), strings.NewReader("x\n"), &out).Run()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConsole_EmptyBank(t *testing.T) {
	var out bytes.Buffer
	err := NewConsole(NewGame(NewBank(), testRNG()), strings.NewReader(""), &out).Run()
	assert.ErrorIs(t, err, ErrEmptyBank)
}
