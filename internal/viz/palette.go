package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/buddhabrot/internal/density"
)

// heat ramp from cold to hot; index by normalized value.
var heatRamp = []lipgloss.Color{
	"#1a1a2e",
	"#16325c",
	"#1f6feb",
	"#00b4d8",
	"#2dd4a0",
	"#ffd60a",
	"#ff8800",
	"#ff3b30",
	"#ffffff",
}

// HeatColor maps a normalized value in [0, 1] onto the heat ramp.
func HeatColor(v float64) lipgloss.Color {
	if v <= 0 {
		return heatRamp[0]
	}
	idx := int(v * float64(len(heatRamp)-1))
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	return heatRamp[idx]
}

// HeatString renders a normalized grid as colored block characters, one
// "██" pair per cell so cells stay roughly square in a terminal. Meant
// for small preview grids, not full renders.
func HeatString(n *density.Normalized) string {
	var b strings.Builder
	for row := 0; row < n.Height(); row++ {
		for col := 0; col < n.Width(); col++ {
			style := lipgloss.NewStyle().Foreground(HeatColor(n.At(row, col)))
			b.WriteString(style.Render("██"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
