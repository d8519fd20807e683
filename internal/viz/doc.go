// Package viz renders density grids in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas; one character cell packs 2x4
//     density cells, so a 200x200 grid previews in a 100x50 terminal.
//   - [HeatString]: lipgloss-colored block heatmap for small grids.
//   - [ProgressBar], [SparklineChart]: render-progress widgets shared with
//     the live TUI.
package viz
