package quiz

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	vocab "github.com/abhisek/careerlab/internal/quiz"
	"github.com/abhisek/careerlab/internal/router"
	"github.com/abhisek/careerlab/internal/screen"
	"github.com/abhisek/careerlab/internal/ui/components"
	"github.com/abhisek/careerlab/internal/ui/layout"
)

// QuizScreen plays a vocabulary quiz.
type QuizScreen struct {
	game     *vocab.Game
	logger   *zap.Logger
	mc       components.MultiChoice
	feedback *vocab.Result
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for game. A nil logger disables logging.
func New(game *vocab.Game, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizScreen{game: game, logger: logger}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.start()
	return nil
}

func (s *QuizScreen) Title() string {
	return "Vocabulary Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.game.Phase() == vocab.PhaseFinished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Feedback overlay: any key moves on.
	if s.feedback != nil {
		s.feedback = nil
		if s.game.Phase() == vocab.PhaseInProgress {
			s.loadQuestion()
		} else {
			sum := s.game.Summary()
			s.logger.Info("quiz finished",
				zap.String("session_id", s.game.ID.String()),
				zap.Int("score", sum.Score),
				zap.Int("asked", sum.Asked),
				zap.Stringer("tier", sum.Tier),
			)
		}
		return s, nil
	}

	if s.game.Phase() == vocab.PhaseFinished {
		if kmsg.String() == "enter" {
			s.start()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		return s.submit()
	}
	return s, cmd
}

func (s *QuizScreen) start() {
	if err := s.game.Start(); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.logger.Info("quiz started", zap.String("session_id", s.game.ID.String()))
	s.loadQuestion()
}

func (s *QuizScreen) loadQuestion() {
	q, ok := s.game.Current()
	if !ok {
		return
	}
	s.mc = components.NewMultiChoice(q.Prompt, q.Options)
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	res, err := s.game.Answer(s.mc.ChosenIndex)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.mc.Reveal(slices.Index(res.Question.Options, res.Question.Answer))
	s.feedback = &res
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.game.Phase() == vocab.PhaseFinished && s.feedback == nil:
		return renderSummary(s.game.Summary(), width, height)
	default:
		return s.renderQuestion(width, height)
	}
}
