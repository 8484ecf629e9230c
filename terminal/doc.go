// Package terminal provides the shared console the colony renders into.
//
// Features:
//   - Direct ANSI cursor positioning over any io.Writer, no terminfo
//   - Optional tcell screen backend behind the same Surface interface
//   - A single mutex-guarded Console whose Render call is the only way to
//     touch the surface, so concurrent ants never tear each other's output
//   - Canvas bounds checks and an optional Mark in place of sentinel positions
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
