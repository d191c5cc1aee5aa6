package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"tourguide/geom"
)

func grid(w, h int) string {
	row := strings.Repeat("a", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestDimPanelsKeepsTextAndRowCount(t *testing.T) {
	base := grid(10, 4)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	out := DimPanels(base, []geom.Rect{geom.NewRect(0, 0, 10, 2)}, dim)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, strings.Repeat("a", 10), StripANSI(line))
	}
}

func TestDimPanelsIgnoresEmptyAndOffscreenPanels(t *testing.T) {
	base := grid(10, 4)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	offscreen := geom.NewRect(-10, -4, 0, 0)
	out := DimPanels(base, []geom.Rect{offscreen}, dim)
	require.Equal(t, base, out)
}

func TestDimPanelsClipsToLineWidth(t *testing.T) {
	base := grid(10, 2)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	out := DimPanels(base, []geom.Rect{geom.NewRect(5, 0, 50, 1)}, dim)
	lines := strings.Split(out, "\n")
	require.Equal(t, strings.Repeat("a", 10), StripANSI(lines[0]))
	require.Equal(t, strings.Repeat("a", 10), lines[1], "untouched row keeps its bytes")
}

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	base := grid(10, 5)
	out := SpliceOverlay(base, "XX\nXX", 3, 1)
	lines := strings.Split(out, "\n")

	require.Equal(t, "aaaaaaaaaa", lines[0])
	require.Equal(t, "aaaXXaaaaa", lines[1])
	require.Equal(t, "aaaXXaaaaa", lines[2])
	require.Equal(t, "aaaaaaaaaa", lines[3])
}

func TestSpliceOverlayPadsShortBaseRows(t *testing.T) {
	base := "aa\naa"
	out := SpliceOverlay(base, "XX", 4, 0)
	lines := strings.Split(out, "\n")
	require.Equal(t, "aa  XX", lines[0])
}

func TestSpliceOverlayIgnoresRowsOutsideBase(t *testing.T) {
	base := grid(4, 2)
	out := SpliceOverlay(base, "XX\nXX\nXX", 0, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "XXaa", lines[1])
}

func TestRowSpansMergesOverlaps(t *testing.T) {
	panels := []geom.Rect{
		geom.NewRect(0, 0, 5, 2),
		geom.NewRect(4, 0, 6, 2),
		geom.NewRect(20, 0, 3, 2),
	}
	spans := rowSpans(panels, 1)
	require.Equal(t, [][2]int{{0, 10}, {20, 23}}, spans)
}
