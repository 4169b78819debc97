// Package viz renders finite-difference error reports in the terminal.
//
// Static output is built from lipgloss tables and asciigraph log-log plots;
// [Explorer] wraps the same rendering in a Bubble Tea program for changing
// parameters interactively.
//
// # Key Bindings
//
//	j/k, ↑/↓   - Select parameter
//	h/l, ←/→   - Adjust selected parameter
//	Enter      - Type a value for the selected parameter
//	Esc        - Cancel editing
//	R          - Reset parameters and clear cached results
//	Q          - Quit
package viz
