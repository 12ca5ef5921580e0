package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/quiz"
	"github.com/abhisek/careerlab/internal/router"
	"github.com/abhisek/careerlab/internal/screen"
	"github.com/abhisek/careerlab/internal/screens/finder"
	"github.com/abhisek/careerlab/internal/screens/market"
	quizscreen "github.com/abhisek/careerlab/internal/screens/quiz"
	"github.com/abhisek/careerlab/internal/ui/components"
	"github.com/abhisek/careerlab/internal/ui/theme"
)

// Deps are the shared objects the home menu hands to the screens it opens.
type Deps struct {
	Postings []jobs.Posting
	// NewGame returns a fresh game over the shared question bank.
	NewGame func() *quiz.Game
	Logger  *zap.Logger
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu     components.Menu
	jobCount int
	bankSize int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:       "VOCAB QUIZ",
			Description: "Tenses, prepositions, phrasal verbs and idioms",
			Action: push(func() screen.Screen {
				return quizscreen.New(deps.NewGame(), deps.Logger)
			}),
		},
		{
			Label:       "FIND JOBS",
			Description: "Match your skills and personality to open roles",
			Action: push(func() screen.Screen {
				return finder.New(deps.Postings, deps.Logger)
			}),
		},
		{
			Label:       "JOB MARKET",
			Description: "Explore the dataset by cluster, level and skill",
			Action: push(func() screen.Screen {
				return market.New(deps.Postings)
			}),
		},
		{
			Label:       "EXIT",
			Description: "See you next time",
			Action:      func() tea.Cmd { return tea.Quit },
		},
	}

	bankSize := 0
	if deps.NewGame != nil {
		bankSize = deps.NewGame().Bank().Len()
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		jobCount: len(deps.Postings),
		bankSize: bankSize,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 48)

	sections := []string{
		theme.Title.Width(cw).Align(lipgloss.Center).Render("C A R E E R L A B"),
		theme.Subtitle.Width(cw).Align(lipgloss.Center).Render(
			fmt.Sprintf("%d job postings · %d quiz questions", h.jobCount, h.bankSize)),
		h.menu.View(cw),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
