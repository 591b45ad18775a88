// Package terminal runs the scene in a terminal through tcell
//
// The world is rasterized at two pixels per cell: each cell prints an upper
// half block whose foreground is the top pixel and background the bottom one.
// The HUD panel tints the top rows and its text is printed over them, the
// inspector fills the bottom rows.
package terminal
