package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calder-r/ndcube"
)

// Styles
var (
	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	unsolvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
)

// renderCube renders the full point table: one line per point with its
// current coordinates (green when home, red otherwise), its orientation
// (green when untwisted), and its original coordinates.
func renderCube(c *ndcube.Cube) string {
	var b strings.Builder
	for i := 0; i < c.Len(); i++ {
		p := c.Point(i)

		coordStyle := badStyle
		if p.InOriginalPosition() {
			coordStyle = goodStyle
		}
		orientStyle := badStyle
		if p.InOriginalOrientation() {
			orientStyle = goodStyle
		}

		b.WriteString(labelStyle.Render("coords: "))
		b.WriteString(coordStyle.Render(joinInts(p.Coords())))
		b.WriteString(labelStyle.Render("  orientation: "))
		b.WriteString(orientStyle.Render(joinInts(p.Orientation())))
		b.WriteString(labelStyle.Render("  original: "))
		b.WriteString(joinInts(p.Original()))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary renders the solved flag and the unsolvedness score.
func renderSummary(c *ndcube.Cube) string {
	solved := "No"
	style := unsolvedStyle
	if c.IsSolved() {
		solved = "Yes"
		style = solvedStyle
	}
	return fmt.Sprintf("%s %s  %s %d",
		labelStyle.Render("Solved?"),
		style.Render(solved),
		labelStyle.Render("Unsolvedness:"),
		c.Unsolvedness())
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
