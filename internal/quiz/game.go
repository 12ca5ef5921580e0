package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
)

// DefaultSize is the number of questions drawn per play-through.
const DefaultSize = 10

var (
	// ErrNotInProgress is returned when answering outside a play-through.
	ErrNotInProgress = errors.New("no quiz in progress")
	// ErrInvalidChoice is returned for an option index outside the options.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Phase is the lifecycle phase of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "not started"
	}
}

// Game is the state of one quiz play-through drawn from a Bank. Restarting
// replaces the state entirely; the bank is shared across play-throughs.
type Game struct {
	bank *Bank
	rng  *rand.Rand
	size int

	// ID identifies the current play-through.
	ID uuid.UUID

	phase     Phase
	questions []Question
	index     int
	score     int
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithSize sets how many questions are drawn. Values <= 0 keep DefaultSize.
func WithSize(n int) GameOption {
	return func(g *Game) {
		if n > 0 {
			g.size = n
		}
	}
}

// NewGame creates a game in the NotStarted phase.
func NewGame(bank *Bank, rng *rand.Rand, opts ...GameOption) *Game {
	g := &Game{bank: bank, rng: rng, size: DefaultSize}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Bank returns the bank questions are drawn from.
func (g *Game) Bank() *Bank {
	return g.bank
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Start begins a fresh play-through: min(size, bank size) questions are
// drawn without replacement in random order and each gets its own shuffled
// copy of the options.
func (g *Game) Start() error {
	pool := g.bank.All()
	if len(pool) == 0 {
		return ErrEmptyBank
	}

	n := min(g.size, len(pool))
	perm := g.rng.Perm(len(pool))
	questions := make([]Question, n)
	for i := 0; i < n; i++ {
		q := pool[perm[i]]
		g.rng.Shuffle(len(q.Options), func(a, b int) {
			q.Options[a], q.Options[b] = q.Options[b], q.Options[a]
		})
		questions[i] = q
	}

	g.ID = uuid.New()
	g.phase = PhaseInProgress
	g.questions = questions
	g.index = 0
	g.score = 0
	return nil
}

// Restart discards the current play-through and starts a new one.
func (g *Game) Restart() error {
	return g.Start()
}

// Current returns the question awaiting an answer.
func (g *Game) Current() (Question, bool) {
	if g.phase != PhaseInProgress {
		return Question{}, false
	}
	return g.questions[g.index].clone(), true
}

// Progress returns the 0-based index of the current question and the
// number of questions in the play-through.
func (g *Game) Progress() (index, total int) {
	return g.index, len(g.questions)
}

// Score is the number of correct answers so far.
func (g *Game) Score() int {
	return g.score
}

// Result is the outcome of one answered question.
type Result struct {
	Question Question
	Chosen   string
	Correct  bool
	// Last is set when this answer finished the play-through.
	Last bool
}

// Answer records the option at index choice (0-based) for the current
// question. An invalid choice leaves the state untouched.
func (g *Game) Answer(choice int) (Result, error) {
	if g.phase != PhaseInProgress {
		return Result{}, ErrNotInProgress
	}
	q := g.questions[g.index]
	if choice < 0 || choice >= len(q.Options) {
		return Result{}, ErrInvalidChoice
	}

	chosen := q.Options[choice]
	correct := chosen == q.Answer
	if correct {
		g.score++
	}
	g.index++
	if g.index == len(g.questions) {
		g.phase = PhaseFinished
	}

	return Result{
		Question: q.clone(),
		Chosen:   chosen,
		Correct:  correct,
		Last:     g.phase == PhaseFinished,
	}, nil
}

// Summary is the final tally of a play-through.
type Summary struct {
	Score      int
	Asked      int
	Percentage float64
	Tier       Tier
}

// Summary reports the tally so far. Percentage is score/asked*100, or 0 when
// nothing was asked.
func (g *Game) Summary() Summary {
	asked := g.index
	var pct float64
	if asked > 0 {
		pct = float64(g.score) / float64(asked) * 100
	}
	return Summary{
		Score:      g.score,
		Asked:      asked,
		Percentage: pct,
		Tier:       TierFor(pct),
	}
}
