package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerlab/internal/ui/theme"
)

// ProgressBar displays a horizontal bar.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    float64
	// Suffix is printed after the bar, e.g. a count or percentage.
	Suffix string
	Width  int
}

// NewProgressBar creates a new progress bar showing a percentage suffix.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Suffix:  fmt.Sprintf("%d%%", int(percent*100)),
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if p.LabelWidth > 0 {
			label = truncate(label, p.LabelWidth)
			label += strings.Repeat(" ", p.LabelWidth-lipgloss.Width(label))
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	suffixWidth := 0
	if p.Suffix != "" {
		suffixWidth = lipgloss.Width(p.Suffix) + 2
	}

	barWidth := p.Width - labelWidth - suffixWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	if p.Suffix != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + p.Suffix)
	}

	return result
}

// BarRow is one labelled value of a bar chart.
type BarRow struct {
	Label string
	Value int
}

// BarChart renders rows as bars scaled to the largest value.
func BarChart(title string, rows []BarRow, width int) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(theme.Hint.Render("  no data"))
		return b.String()
	}

	maxVal, labelWidth := 0, 0
	for _, r := range rows {
		maxVal = max(maxVal, r.Value)
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	labelWidth = min(labelWidth, 24)

	for _, r := range rows {
		pct := 0.0
		if maxVal > 0 {
			pct = float64(r.Value) / float64(maxVal)
		}
		bar := ProgressBar{
			Label:      r.Label,
			LabelWidth: labelWidth,
			Percent:    pct,
			Suffix:     fmt.Sprintf("%d", r.Value),
			Width:      width,
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
