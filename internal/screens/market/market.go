package market

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/screen"
	"github.com/abhisek/careerlab/internal/ui/components"
	"github.com/abhisek/careerlab/internal/ui/layout"
	"github.com/abhisek/careerlab/internal/ui/theme"
)

type tab int

const (
	tabClusters tab = iota
	tabExperience
	tabSkills
	tabCount
)

var tabNames = [tabCount]string{"Career clusters", "Experience levels", "Top skills"}

// MarketScreen shows aggregate statistics over the dataset.
type MarketScreen struct {
	overview jobs.Overview
	charts   [tabCount][]components.BarRow
	active   tab
}

var _ screen.Screen = (*MarketScreen)(nil)
var _ screen.KeyHintProvider = (*MarketScreen)(nil)

// New computes the statistics once for postings.
func New(postings []jobs.Posting) *MarketScreen {
	return &MarketScreen{
		overview: jobs.Summarize(postings),
		charts: [tabCount][]components.BarRow{
			tabClusters:   toRows(jobs.CountByCluster(postings)),
			tabExperience: toRows(jobs.CountByExperience(postings)),
			tabSkills:     toRows(jobs.TopSkills(postings, jobs.DefaultTopSkills)),
		},
	}
}

func toRows(counts []jobs.Count) []components.BarRow {
	rows := make([]components.BarRow, len(counts))
	for i, c := range counts {
		rows[i] = components.BarRow{Label: c.Label, Value: c.Count}
	}
	return rows
}

func (s *MarketScreen) Init() tea.Cmd {
	return nil
}

func (s *MarketScreen) Title() string {
	return "Job Market"
}

func (s *MarketScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Chart"},
		{Key: "1-3", Description: "Jump"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MarketScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key := kmsg.String(); key {
	case "right", "l", "tab":
		s.active = (s.active + 1) % tabCount
	case "left", "h", "shift+tab":
		s.active = (s.active - 1 + tabCount) % tabCount
	case "1", "2", "3":
		s.active = tab(key[0] - '1')
	}
	return s, nil
}

func (s *MarketScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderOverview())
	b.WriteString("\n\n")
	b.WriteString(s.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(components.BarChart(tabNames[s.active], s.charts[s.active], cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func (s *MarketScreen) renderOverview() string {
	ov := s.overview
	metric := func(label, value string) string {
		return theme.Subtitle.Render(label+" ") + theme.Body.Bold(true).Render(value)
	}
	return strings.Join([]string{
		metric("Total jobs", fmt.Sprintf("%d", ov.Total)),
		metric("Average salary", jobs.FormatSalary(ov.AverageSalary)),
		metric("Top cluster", ov.TopCluster),
	}, "   ")
}

func (s *MarketScreen) renderTabs() string {
	parts := make([]string, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if tab(i) == s.active {
			parts[i] = lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.Text).Bold(true).Render(label)
		} else {
			parts[i] = theme.Subtitle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}
