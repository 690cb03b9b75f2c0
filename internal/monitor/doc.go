// Package monitor implements the live bandwidth dashboard for one interface.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: interface sampling state, scale mode, units, layout
//   - Update: processes window size changes, keystrokes, ticks and counter reads
//   - View: renders the RX and TX panels and their statistics
//
// # Key Components
//
//	Model    - the Bubble Tea model
//	Iface    - previous counters, read time and the two Channels
//	Channel  - a series.Buffer with cached statistics for one direction
//	Observer - receives every sample (metrics export)
//
// # Message Flow
//
//  1. Init reads the baseline counters (no sample is produced)
//  2. countersMsg arrives; the delta becomes one sample per direction
//  3. tickMsg fires after the configured delay and triggers the next read
//  4. View() re-renders both panels
//
// A tea.WindowSizeMsg only records the new size. The resize is applied at
// the top of Update, so the buffers never change capacity in the middle of
// handling a sample or a key.
//
// # Counter resets
//
// A counter lower than the previous read (interface reset or wrap) yields a
// zero sample, a warning in the log and an Observer.CounterReset call. The
// lower value becomes the new baseline.
package monitor
