// Package ui provides theme and color support for the trace, diagram, and
// TUI output surfaces. It defines color schemes and ANSI escape code
// accessors so the presentation layers stay consistent without each one
// reimplementing terminal styling.
//
// Colors are resolved through the active theme, which honors the NO_COLOR
// convention and the --no-color flag.
package ui
