package store

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

// SequenceToSVG renders a run as a snapshot strip: one row per snapshot,
// one cell per primary element, cursor positions highlighted. The strip
// makes a whole run reviewable at a glance outside the terminal.
func SequenceToSVG(seq trace.Sequence, cell float64) string {
	if len(seq) == 0 {
		return ""
	}

	cols := 0
	for _, s := range seq {
		if len(s.Primary) > cols {
			cols = len(s.Primary)
		}
	}
	if cols == 0 {
		cols = 1
	}

	pad := cell * 0.15
	labelW := cell * 3
	width := labelW + float64(cols)*cell + pad*2
	height := float64(len(seq))*cell + pad*2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	fontSize := cell * 0.45
	for row, s := range seq {
		y := pad + float64(row)*cell

		marked := make(map[int]bool, len(s.Cursors))
		for _, idx := range s.Cursors {
			if idx >= 0 && idx < len(s.Primary) {
				marked[idx] = true
			}
		}

		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="#888899">%d</text>
`, pad, y+cell*0.7, fontSize, s.Step))

		for col, v := range s.Primary {
			x := labelW + float64(col)*cell
			fill := "#224444"
			if marked[col] {
				fill = "#00aaaa"
			}
			if s.Terminal {
				fill = "#00aa55"
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#0a0a0a"/>
`, x, y, cell, cell, fill))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="#ffffff" text-anchor="middle">%d</text>
`, x+cell/2, y+cell*0.7, fontSize, v))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
