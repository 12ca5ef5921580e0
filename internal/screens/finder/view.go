package finder

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/recommend"
	"github.com/abhisek/careerlab/internal/ui/components"
	"github.com/abhisek/careerlab/internal/ui/theme"
)

const labelWidth = 14

func (s *FinderScreen) renderForm(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your profile"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Comma separated. Only skills are required."))
	b.WriteString("\n\n")
	for _, in := range s.inputs {
		b.WriteString(in.View(labelWidth))
		b.WriteString("\n")
	}
	if s.warning != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warn.Width(cw).Render(s.warning))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Width(cw+6).Render(b.String()))
}

func (s *FinderScreen) renderResults(width, height int) string {
	res := s.result

	var b strings.Builder
	if res.Empty() {
		b.WriteString(theme.Warn.Render("No jobs match your criteria. Try adjusting your skills or filters."))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(theme.Title.Render(fmt.Sprintf("Found %d matching jobs", res.Total)))
	if res.Total > len(res.Matches) {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  (top %d shown)", len(res.Matches))))
	}
	b.WriteString("\n\n")

	for _, m := range res.Matches {
		b.WriteString(renderMatch(m))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Padding(0, 2).Render(b.String())
}

func renderMatch(m recommend.Match) string {
	p := m.Posting
	pct := m.Percentage()
	badge := theme.StrengthStyle(int(m.Strength())).Render(fmt.Sprintf("%3d%% %-12s", pct, m.Strength()))

	title := theme.Body.Bold(true).Render(fmt.Sprintf("%s %s", p.ExperienceLevel, p.Title))
	detail := theme.Subtitle.Render(fmt.Sprintf("%s · %s, %s · %s · %s",
		p.Company, p.City, p.Region, jobs.FormatSalary(p.Salary), p.WorkArrangement))

	return badge + "  " + title + "  " + detail
}
