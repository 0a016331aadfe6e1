package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// settledKeys are aux keys whose members render as locked-in positions.
var settledKeys = []string{"settled", "sorted", "visited"}

// RenderSnapshot draws one frame as styled cells with cursor markers and
// the auxiliary structures beneath. It is purely textual; the same frame
// always renders to the same string.
func RenderSnapshot(s trace.Snapshot) string {
	var b strings.Builder

	if len(s.Primary) > 0 {
		b.WriteString(renderPrimary(s))
		b.WriteString("\n")
		if row := renderMarkers(s); row != "" {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	if row := renderValueCursors(s); row != "" {
		b.WriteString(row)
		b.WriteString("\n")
	}

	for _, key := range sortedKeys(s.Aux) {
		b.WriteString(labelStyle.Render(key) + valueStyle.Render(formatInts(s.Aux[key])) + "\n")
	}
	for _, key := range sortedGroupKeys(s.Groups) {
		b.WriteString(labelStyle.Render(key) + valueStyle.Render(formatGroups(s.Groups[key])) + "\n")
	}

	return b.String()
}

func renderPrimary(s trace.Snapshot) string {
	settled := settledSet(s)
	marked := indexCursors(s)

	cells := make([]string, len(s.Primary))
	for i, v := range s.Primary {
		text := fmt.Sprintf("%d", v)
		switch {
		case len(marked[i]) > 0:
			cells[i] = cursorCellStyle.Render(text)
		case settled[i]:
			cells[i] = settledCellStyle.Render(text)
		default:
			cells[i] = cellStyle.Render(text)
		}
	}
	return strings.Join(cells, " ")
}

// renderMarkers puts each index cursor's name under the cell it points at.
func renderMarkers(s trace.Snapshot) string {
	marked := indexCursors(s)
	if len(marked) == 0 {
		return ""
	}

	parts := make([]string, len(s.Primary))
	for i, v := range s.Primary {
		cellWidth := len(fmt.Sprintf("%d", v)) + 2
		names := marked[i]
		sort.Strings(names)
		label := strings.Join(names, ",")
		if len(label) > cellWidth {
			label = label[:cellWidth]
		}
		parts[i] = markerStyle.Render(pad(label, cellWidth))
	}
	return strings.Join(parts, " ")
}

// renderValueCursors lists cursors that carry values rather than indices
// into the primary structure (a found flag, a running median, a count).
func renderValueCursors(s trace.Snapshot) string {
	names := make([]string, 0, len(s.Cursors))
	for name, v := range s.Cursors {
		if v < 0 || v >= len(s.Primary) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, s.Cursors[name])
	}
	return labelStyle.Render("cursors") + valueStyle.Render(strings.Join(parts, "  "))
}

// indexCursors groups cursor names by the primary index they point at.
func indexCursors(s trace.Snapshot) map[int][]string {
	marked := make(map[int][]string)
	for name, idx := range s.Cursors {
		if idx >= 0 && idx < len(s.Primary) {
			marked[idx] = append(marked[idx], name)
		}
	}
	return marked
}

func settledSet(s trace.Snapshot) map[int]bool {
	set := make(map[int]bool)
	for _, key := range settledKeys {
		for _, idx := range s.Aux[key] {
			if idx >= 0 && idx < len(s.Primary) {
				set[idx] = true
			}
		}
	}
	return set
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedGroupKeys(m map[string][][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatGroups(groups [][]int) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = formatInts(g)
	}
	return strings.Join(parts, " ")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
