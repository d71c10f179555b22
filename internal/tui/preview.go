package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yushkumar524/BiasLabPrototype/internal/bias"
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

const barWidth = 20

func renderPreview(article *models.Article, width, height, scroll int) string {
	if article == nil {
		return centerText("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(article.Title)
	source := previewSourceStyle.Render(
		fmt.Sprintf("%s · %s · %s", article.Source, article.Author, article.PublishedDate.Format("Jan 2, 2006")),
	)

	scores := renderScores(article.BiasScores)

	body := previewBodyStyle.Width(contentWidth).Render(wrapText(article.Content, contentWidth))

	var sections []string
	sections = append(sections, title, source, scores)
	if len(article.HighlightedPhrases) > 0 {
		sections = append(sections, "", renderHighlights(article.HighlightedPhrases, contentWidth))
	}
	sections = append(sections, "", body)
	sections = append(sections, "", previewLinkStyle.Width(contentWidth).Render("Read more: "+article.URL))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func renderScores(s models.BiasScores) string {
	rows := []string{
		scoreRow("Ideological", s.IdeologicalStance, -100, 100),
		scoreRow("Factual", s.FactualGrounding, 0, 100),
		scoreRow("Emotional", s.EmotionalTone, 0, 100),
		scoreRow("Framing", s.FramingChoices, 0, 100),
		scoreRow("Transparency", s.SourceTransparency, 0, 100),
	}
	overall := previewDimLabelStyle.Render(fmt.Sprintf("%-13s", "Overall")) +
		itemSelectedStyle.Render(fmt.Sprintf("%.1f", s.Overall))
	return strings.Join(append(rows, overall), "\n")
}

func scoreRow(label string, value, lo, hi float64) string {
	return previewDimLabelStyle.Render(fmt.Sprintf("%-13s", label)) +
		biasBar(value, lo, hi, barWidth) +
		itemTimeStyle.Render(fmt.Sprintf(" %6.1f", value))
}

// biasBar renders value on a [lo, hi] scale as a fixed-width bar.
func biasBar(value, lo, hi float64, width int) string {
	if width < 1 || hi <= lo {
		return ""
	}
	frac := (value - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	color := colorGreen
	switch {
	case frac >= 0.75:
		color = colorRed
	case frac >= 0.5:
		color = colorWarn
	}
	fillStyle := lipgloss.NewStyle().Foreground(color)

	return fillStyle.Render(strings.Repeat("█", filled)) +
		tabSeparatorStyle.Render(strings.Repeat("░", width-filled))
}

func renderHighlights(phrases []models.HighlightedPhrase, width int) string {
	var b strings.Builder
	b.WriteString(previewDimLabelStyle.Render("Flagged phrases"))
	for _, p := range phrases {
		line := fmt.Sprintf("  %s · %s (%.0f%%)",
			previewPhraseStyle.Render("\""+p.Text+"\""),
			bias.Dimension(p.BiasType).Label(),
			p.Confidence*100,
		)
		b.WriteString("\n")
		b.WriteString(truncateStr(line, width+20)) // styled text carries escape codes
	}
	return b.String()
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
