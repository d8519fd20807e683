package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/buddhabrot/internal/density"
)

// HeatmapSVG renders a single normalized grid as an SVG heatmap: one rect
// per nonzero cell, green on a dark background, scale pixels per cell.
func HeatmapSVG(n *density.Normalized, scale float64) string {
	if n == nil {
		return ""
	}

	width := float64(n.Width()) * scale
	height := float64(n.Height()) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for row := 0; row < n.Height(); row++ {
		for col := 0; col < n.Width(); col++ {
			v := n.At(row, col)
			if v <= 0 {
				continue
			}
			if v > 1 {
				v = 1
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#00ff00" fill-opacity="%.3f"/>
`, float64(col)*scale, float64(row)*scale, scale, scale, v))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
