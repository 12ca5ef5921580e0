package market

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerlab/internal/jobs"
)

func testPostings() []jobs.Posting {
	return []jobs.Posting{
		{ID: 1, Cluster: "Technology", ExperienceLevel: "Senior", Salary: 100000, TechnicalSkills: []string{"Python", "SQL"}},
		{ID: 2, Cluster: "Technology", ExperienceLevel: "Junior", Salary: 50000, TechnicalSkills: []string{"Python"}},
		{ID: 3, Cluster: "Business", ExperienceLevel: "Senior", Salary: 60000, TechnicalSkills: []string{"Excel"}},
	}
}

func TestMarket_OverviewAndDefaultChart(t *testing.T) {
	s := New(testPostings())
	view := s.View(100, 30)

	for _, want := range []string{"Total jobs", "3", "$70,000", "Technology", "Career clusters"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMarket_TabSwitching(t *testing.T) {
	s := New(testPostings())

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.active != tabExperience {
		t.Errorf("active = %d, want experience", s.active)
	}

	s.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if s.active != tabSkills {
		t.Errorf("active = %d, want skills", s.active)
	}
	if !strings.Contains(s.View(100, 30), "Python") {
		t.Error("skills chart missing Python")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.active != tabClusters {
		t.Errorf("active = %d, want wrap to clusters", s.active)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.active != tabSkills {
		t.Errorf("active = %d, want wrap to skills", s.active)
	}
}

func TestMarket_EmptyDataset(t *testing.T) {
	s := New(nil)
	if !strings.Contains(s.View(100, 30), "no data") {
		t.Error("expected placeholder for empty dataset")
	}
}
