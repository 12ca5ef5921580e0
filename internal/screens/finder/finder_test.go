package finder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerlab/internal/jobs"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *FinderScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func testPostings() []jobs.Posting {
	return []jobs.Posting{
		{ID: 1, Title: "Data Scientist", ExperienceLevel: "Senior", Region: "Europe", City: "Berlin", Company: "Company 1",
			Salary: 150000, WorkArrangement: "Remote", TechnicalSkills: []string{"Python", "SQL"}},
		{ID: 2, Title: "Accountant", ExperienceLevel: "Junior", Region: "Asia", City: "Tokyo", Company: "Company 2",
			Salary: 60000, WorkArrangement: "On-site", TechnicalSkills: []string{"Excel"}},
	}
}

func newTestScreen() *FinderScreen {
	s := New(testPostings(), nil)
	s.Init()
	return s
}

func TestFinder_EmptySkillsWarns(t *testing.T) {
	s := newTestScreen()
	s.Update(specialKey(tea.KeyEnter))

	if s.result != nil {
		t.Fatal("expected no search without skills")
	}
	if !strings.Contains(s.warning, "at least one skill") {
		t.Errorf("warning = %q", s.warning)
	}
}

func TestFinder_SearchRanksMatches(t *testing.T) {
	s := newTestScreen()
	typeText(s, "Python, SQL")
	s.Update(specialKey(tea.KeyEnter))

	if s.result == nil {
		t.Fatalf("expected result, warning %q", s.warning)
	}
	if s.result.Total != 2 {
		t.Errorf("Total = %d, want 2", s.result.Total)
	}
	if s.result.Matches[0].Posting.ID != 1 || s.result.Matches[0].Score != 6 {
		t.Errorf("top match = %+v", s.result.Matches[0])
	}
	view := s.View(120, 30)
	if !strings.Contains(view, "Found 2 matching jobs") {
		t.Errorf("view missing count: %q", view)
	}
	if !strings.Contains(view, "$150,000") {
		t.Error("view missing formatted salary")
	}
}

func TestFinder_TabMovesFocusAndFiltersApply(t *testing.T) {
	s := newTestScreen()
	typeText(s, "Excel")
	for i := 0; i < fieldMinSalary; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	if s.focus != fieldMinSalary {
		t.Fatalf("focus = %d, want %d", s.focus, fieldMinSalary)
	}
	typeText(s, "100000")
	s.Update(specialKey(tea.KeyEnter))

	if s.result == nil {
		t.Fatalf("expected result, warning %q", s.warning)
	}
	if !s.result.Empty() {
		t.Errorf("expected no matches above 100000, got %d", s.result.Total)
	}
	if !strings.Contains(s.View(120, 30), "No jobs match your criteria") {
		t.Error("expected empty-result message")
	}

	// Enter returns to the form with inputs kept.
	s.Update(specialKey(tea.KeyEnter))
	if s.result != nil {
		t.Error("expected form after enter")
	}
	if s.inputs[fieldSkills].Value() != "Excel" {
		t.Errorf("skills = %q", s.inputs[fieldSkills].Value())
	}
}

func TestFinder_UnknownLevelWarns(t *testing.T) {
	s := newTestScreen()
	typeText(s, "Python")
	for i := 0; i < fieldLevel; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	typeText(s, "Wizard")
	s.Update(specialKey(tea.KeyEnter))

	if s.result != nil {
		t.Fatal("expected no search with unknown level")
	}
	if !strings.Contains(s.warning, "Unknown experience level") {
		t.Errorf("warning = %q", s.warning)
	}
}

func TestFinder_UnknownTraitRegionArrangementWarn(t *testing.T) {
	tests := []struct {
		field int
		value string
		want  string
	}{
		{fieldTraits, "Curious", "Unknown personality trait \"Curious\""},
		{fieldRegions, "Europe, Atlantis", "Unknown region \"Atlantis\""},
		{fieldArrangements, "Nomadic", "Unknown work arrangement \"Nomadic\""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := newTestScreen()
			typeText(s, "Python")
			for i := 0; i < tt.field; i++ {
				s.Update(specialKey(tea.KeyTab))
			}
			typeText(s, tt.value)
			s.Update(specialKey(tea.KeyEnter))

			if s.result != nil {
				t.Fatal("expected no search with unknown value")
			}
			if !strings.Contains(s.warning, tt.want) {
				t.Errorf("warning = %q, want %q", s.warning, tt.want)
			}
		})
	}
}

func TestFinder_KnownTraitAndRegionSearch(t *testing.T) {
	s := newTestScreen()
	typeText(s, "Python")
	s.Update(specialKey(tea.KeyTab))
	typeText(s, "Analytical")
	s.Update(specialKey(tea.KeyTab))
	typeText(s, "Europe")
	s.Update(specialKey(tea.KeyEnter))

	if s.result == nil {
		t.Fatalf("expected result, warning %q", s.warning)
	}
	if s.result.Matches[0].Posting.ID != 1 {
		t.Errorf("top match = %d, want 1", s.result.Matches[0].Posting.ID)
	}
}
