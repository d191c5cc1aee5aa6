package views

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tourguide/geom"
)

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color/style escape sequences.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// DimPanels recolors every cell of base covered by one of the panel
// rectangles with the dim style. Rows touched by a panel lose their
// original coloring; the uncovered cells keep their text.
func DimPanels(base string, panels []geom.Rect, dim lipgloss.Style) string {
	lines := strings.Split(base, "\n")
	for y := range lines {
		spans := rowSpans(panels, y)
		if len(spans) == 0 {
			continue
		}
		plain := StripANSI(lines[y])
		width := runewidth.StringWidth(plain)

		var b strings.Builder
		cursor := 0
		for _, sp := range spans {
			from, to := sp[0], sp[1]
			if from < 0 {
				from = 0
			}
			if to > width {
				to = width
			}
			if to <= from || from >= width {
				continue
			}
			b.WriteString(sliceCells(plain, cursor, from))
			b.WriteString(dim.Render(sliceCells(plain, from, to)))
			cursor = to
		}
		b.WriteString(sliceCells(plain, cursor, width))
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// SpliceOverlay places the overlay block on top of base at cell (x, y).
// Base rows under the overlay are flattened to plain text before the cut so
// escape sequences cannot be split.
func SpliceOverlay(base, overlay string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)

	for i, ov := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		plain := StripANSI(baseLines[row])

		left := sliceCells(plain, 0, x)
		pad := x - runewidth.StringWidth(left)
		if pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		ovPad := overlayWidth - lipgloss.Width(ov)
		if ovPad > 0 {
			ov += strings.Repeat(" ", ovPad)
		}

		right := sliceCells(plain, x+overlayWidth, runewidth.StringWidth(plain))
		baseLines[row] = left + ov + right
	}
	return strings.Join(baseLines, "\n")
}

// rowSpans returns the merged, sorted column intervals covered by the
// panels on row y.
func rowSpans(panels []geom.Rect, y int) [][2]int {
	var spans [][2]int
	for _, p := range panels {
		if p.Empty() || y < p.Top || y >= p.Bottom {
			continue
		}
		spans = append(spans, [2]int{p.Left, p.Right})
	}
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp[0] <= last[1] {
			if sp[1] > last[1] {
				last[1] = sp[1]
			}
		} else {
			merged = append(merged, sp)
		}
	}
	return merged
}

// sliceCells returns the cells [from, to) of a plain line. A wide rune
// straddling a boundary is dropped rather than split.
func sliceCells(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col >= to {
			break
		}
		if col >= from && col+w <= to {
			b.WriteRune(r)
		}
		col += w
	}
	return b.String()
}
