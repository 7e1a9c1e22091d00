// Package ui implements the nekmon terminal interface with Bubble Tea.
//
// The layout is a header with the Update and Jam lamps, a grid of five
// line charts (three on top, two below), and a status bar. Keys 1-5 flip the corresponding chart between plotting against the
// step number and the solution time; the first chart swaps its axes
// entirely, the rest only change their x series.
//
// The model never reads the logfile directly. It consumes snapshots from
// the shared state store on each tick, so a slow filesystem cannot stall
// rendering.
package ui
