// Package viz renders simulation output for the terminal.
//
// It has three parts:
//
//   - [Canvas] and [Camera]: a Braille raster and a quaternion-oriented
//     projection used to draw particle trajectories ([Snapshot])
//   - [PlotSeries]: asciigraph line charts of energy and separation
//   - [Summary], [Sparkline]: lipgloss-styled run summaries
//
// The renderer only reads positions. It never mutates simulation state.
package viz
