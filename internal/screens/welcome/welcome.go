package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerlab/internal/router"
	"github.com/abhisek/careerlab/internal/screen"
	"github.com/abhisek/careerlab/internal/ui/theme"
)

const tickInterval = 120 * time.Millisecond

const logoArt = `   ╭──────╮
╭──┴──────┴──╮
│    ┌──┐    │
├────┤  ├────┤
│    └──┘    │
╰────────────╯`

const tagline = "Find your path. Sharpen your English."

var logoLines = strings.Split(logoArt, "\n")

// Reveal schedule in ticks: one logo line per tick, a short pause, then the
// banner and tagline. Ticking stops at settled.
var (
	bannerAt = len(logoLines) + 2
	settled  = bannerAt + 1
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// WelcomeScreen draws the logo line by line and replaces itself with the
// home screen on the first keypress.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen handing over to the screen built by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.ticks >= settled {
			return w, nil
		}
		w.ticks++
		return w, tick()

	case tea.KeyPressMsg:
		if w.transitioned {
			return w, nil
		}
		w.transitioned = true
		next := w.homeFactory()
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	shown := min(w.ticks, len(logoLines))
	logo := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(strings.Join(logoLines[:shown], "\n"))
	// Pad unrevealed lines so the logo does not shift while drawing.
	blocks := []string{logo + strings.Repeat("\n", len(logoLines)-shown)}

	if w.ticks >= bannerAt {
		blocks = append(blocks,
			RenderBanner(width),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, interleave(blocks)...))
}

// interleave puts a blank line between blocks.
func interleave(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, b)
	}
	return out
}
