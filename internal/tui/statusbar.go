package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(articleCount int, filterLabel string, width int, searching bool) string {
	left := fmt.Sprintf(" %d articles", articleCount)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}

	right := " / search  f narrative  o open  ? help  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
