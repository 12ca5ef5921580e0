package app

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/quiz"
	"github.com/abhisek/careerlab/internal/router"
	"github.com/abhisek/careerlab/internal/screens/home"
)

func testModel() AppModel {
	bank := quiz.DefaultBank()
	return newAppModel(home.Deps{
		Postings: []jobs.Posting{{ID: 1}},
		NewGame: func() *quiz.Game {
			return quiz.NewGame(bank, rand.New(rand.NewPCG(1, 2)))
		},
	})
}

// drain runs cmd and feeds its message back into the model.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(AppModel)
}

func TestSplashReplacedByHome(t *testing.T) {
	m := testModel()
	next, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	m = drain(t, next.(AppModel), cmd)

	if got := m.router.Active().Title(); got != "Home" {
		t.Fatalf("active = %q, want Home", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestEscPopsToHome(t *testing.T) {
	m := testModel()
	next, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	m = drain(t, next.(AppModel), cmd)

	// Open the job market.
	next, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	next, _ = next.(AppModel).Update(tea.KeyPressMsg{Code: tea.KeyDown})
	next, cmd = next.(AppModel).Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = drain(t, next.(AppModel), cmd)
	if got := m.router.Active().Title(); got != "Job Market" {
		t.Fatalf("active = %q, want Job Market", got)
	}

	next, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg on esc")
	}
	m = drain(t, next.(AppModel), cmd)
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("active = %q after esc, want Home", got)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	v := next.(AppModel).View()
	if v.Content == "" {
		t.Error("expected min size message")
	}
}
