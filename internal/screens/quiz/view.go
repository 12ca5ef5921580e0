package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	vocab "github.com/abhisek/careerlab/internal/quiz"
	"github.com/abhisek/careerlab/internal/ui/components"
	"github.com/abhisek/careerlab/internal/ui/theme"
)

func (s *QuizScreen) renderQuestion(width, height int) string {
	cw := components.ContentWidth(width)
	index, total := s.game.Progress()
	if s.feedback != nil {
		index-- // progress has already moved past the answered question
	}

	var b strings.Builder

	info := fmt.Sprintf("Question %d of %d", index+1, total)
	score := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d", s.game.Score()))
	gap := cw - lipgloss.Width(info) - lipgloss.Width(score)
	b.WriteString(theme.Label.Render(info))
	if gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
	}
	b.WriteString(score)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	b.WriteString(s.mc.View())

	if fb := s.feedback; fb != nil {
		b.WriteString("\n")
		if fb.Correct {
			b.WriteString(theme.Correct.Render("✓ Correct! Well done!"))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("✗ Sorry, that's incorrect. The correct answer is: '%s'", fb.Question.Answer)))
		}
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw).Render("Explanation: " + fb.Question.Explanation))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Width(cw+6).Render(b.String()))
}

func renderSummary(sum vocab.Summary, width, height int) string {
	cw := components.ContentWidth(width)

	lines := []string{
		theme.Title.Render("GAME OVER!"),
		"",
		theme.Body.Render(fmt.Sprintf("Your final score: %d/%d (%.0f%%)", sum.Score, sum.Asked, sum.Percentage)),
		"",
		components.NewProgressBar("", sum.Percentage/100, cw-4).View(),
		"",
		tierStyle(sum.Tier).Render(sum.Tier.Message()),
		"",
		theme.Hint.Render("Enter to play again · Esc for home"),
	}
	card := theme.Card.Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func tierStyle(t vocab.Tier) lipgloss.Style {
	switch t {
	case vocab.TierExcellent, vocab.TierGood:
		return theme.Correct
	case vocab.TierFair:
		return theme.Warn
	default:
		return theme.Incorrect
	}
}

func renderError(width, height int, msg string) string {
	content := theme.Incorrect.Render("Cannot start the quiz: "+msg) + "\n\n" +
		theme.Hint.Render("press any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
