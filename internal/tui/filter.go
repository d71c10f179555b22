package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yushkumar524/BiasLabPrototype/internal/models"
)

// filterBar lets the user narrow the article list to one narrative.
// Unlike a multi-select, a narrative filter is exclusive: an article
// belongs to exactly one narrative.
type filterBar struct {
	narratives   []models.NarrativeSummary
	selected     string // narrative id, "" means all
	filterMode   bool
	filterCursor int
}

func newFilterBar(narratives []models.NarrativeSummary) filterBar {
	return filterBar{narratives: narratives}
}

func (f *filterBar) toggleCurrent() {
	if f.filterCursor >= len(f.narratives) {
		return
	}
	id := f.narratives[f.filterCursor].ID
	if f.selected == id {
		f.selected = ""
	} else {
		f.selected = id
	}
}

func (f *filterBar) activeLabel() string {
	for _, n := range f.narratives {
		if n.ID == f.selected {
			return n.Title
		}
	}
	return "All"
}

func (f *filterBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	if f.selected == "" {
		parts = append(parts, tabActiveStyle.Render("All"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("All"))
	}

	for i, n := range f.narratives {
		style := tabInactiveStyle
		if f.selected == n.ID {
			style = tabActiveStyle
		}
		label := truncateStr(n.Title, 28)
		if f.filterMode && i == f.filterCursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
