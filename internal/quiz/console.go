package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the console input ends mid-game.
var ErrInputClosed = errors.New("input closed")

const rule = "============================================================"

// Console plays a game over a line based text interface.
type Console struct {
	game    *Game
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a console reading answers from in and writing to out.
func NewConsole(game *Game, in io.Reader, out io.Writer) *Console {
	return &Console{
		game:    game,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the welcome banner and plays until the user declines another
// round. It returns ErrInputClosed if input ends before that.
func (c *Console) Run() error {
	c.welcome()
	for {
		if err := c.PlayOnce(); err != nil {
			return err
		}
		again, err := c.askPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			c.printf("\nThank you for playing! Goodbye!\n")
			return nil
		}
	}
}

// PlayOnce runs a single play-through and prints the final score.
func (c *Console) PlayOnce() error {
	if err := c.game.Start(); err != nil {
		return err
	}

	for c.game.Phase() == PhaseInProgress {
		q, _ := c.game.Current()
		index, total := c.game.Progress()

		c.printf("\nQuestion %d of %d:\n%s\n", index+1, total, q.Prompt)
		for i, opt := range q.Options {
			c.printf("%d. %s\n", i+1, opt)
		}

		choice, err := c.readChoice(len(q.Options))
		if err != nil {
			return err
		}
		res, err := c.game.Answer(choice)
		if err != nil {
			return err
		}

		if res.Correct {
			c.printf("\n✓ Correct! Well done!\n")
		} else {
			c.printf("\n✗ Sorry, that's incorrect. The correct answer is: '%s'\n", res.Question.Answer)
		}
		c.printf("Explanation: %s\n", res.Question.Explanation)
	}

	s := c.game.Summary()
	c.printf("\n%s\nGAME OVER! Your final score: %d/%d\n%s\n%s\n", rule, s.Score, s.Asked, s.Tier.Message(), rule)
	return nil
}

func (c *Console) welcome() {
	c.printf("\n%s\n", rule)
	c.printf("WELCOME TO THE VOCABULARY FILL-IN-THE-BLANKS GAME!\n")
	c.printf("%s\n", rule)
	c.printf("Test your knowledge of English tenses, prepositions, phrasal verbs, and idioms.\n")
	c.printf("\nInstructions:\n")
	c.printf("- Read each sentence carefully\n")
	c.printf("- Choose the correct word to fill in the blank\n")
	c.printf("- Learn from the explanations after each question\n")
	c.printf("%s\n\n", rule)
}

// readChoice prompts until a number in [1, n] is entered and returns it
// as a 0-based index.
func (c *Console) readChoice(n int) (int, error) {
	for {
		c.printf("\nEnter your choice (1-%d): ", n)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Please enter a valid number.\n")
			continue
		}
		if choice < 1 || choice > n {
			c.printf("Please enter a number between 1 and %d.\n", n)
			continue
		}
		return choice - 1, nil
	}
}

func (c *Console) askPlayAgain() (bool, error) {
	for {
		c.printf("\nWould you like to play again? (yes/no): ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			c.printf("Please enter 'yes' or 'no'.\n")
		}
	}
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
