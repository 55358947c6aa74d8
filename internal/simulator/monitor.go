package simulator

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// Monitor receives notifications as a game progresses.
type Monitor interface {
	// OnStart is called once with the starting configuration.
	OnStart(initial []int)

	// OnRound is called after each round with the new configuration.
	OnRound(round int, piles []int)

	// OnComplete is called when the board reaches its final configuration.
	OnComplete(rounds int)
}

// NullMonitor is a no-op implementation.
type NullMonitor struct{}

func (NullMonitor) OnStart([]int)      {}
func (NullMonitor) OnRound(int, []int) {}
func (NullMonitor) OnComplete(int)     {}

// MultiMonitor fans events out to multiple monitors.
type MultiMonitor struct {
	monitors []Monitor
}

// NewMultiMonitor builds a composite monitor, pruning nil entries and
// returning a NullMonitor when nothing is left.
func NewMultiMonitor(monitors ...Monitor) Monitor {
	filtered := make([]Monitor, 0, len(monitors))
	for _, m := range monitors {
		if m != nil {
			filtered = append(filtered, m)
		}
	}

	switch len(filtered) {
	case 0:
		return NullMonitor{}
	case 1:
		return filtered[0]
	default:
		return &MultiMonitor{monitors: filtered}
	}
}

func (m *MultiMonitor) OnStart(initial []int) {
	for _, monitor := range m.monitors {
		monitor.OnStart(initial)
	}
}

func (m *MultiMonitor) OnRound(round int, piles []int) {
	for _, monitor := range m.monitors {
		monitor.OnRound(round, piles)
	}
}

func (m *MultiMonitor) OnComplete(rounds int) {
	for _, monitor := range m.monitors {
		monitor.OnComplete(rounds)
	}
}

// TextMonitor prints one line per configuration in the classic simulator
// format.
type TextMonitor struct {
	writer io.Writer
}

// NewTextMonitor creates a text monitor writing to w, or stdout if w is nil.
func NewTextMonitor(w io.Writer) *TextMonitor {
	if w == nil {
		w = os.Stdout
	}
	return &TextMonitor{writer: w}
}

func (t *TextMonitor) OnStart(initial []int) {
	fmt.Fprintf(t.writer, "Initial configuration: %s\n", FormatPiles(initial))
}

func (t *TextMonitor) OnRound(round int, piles []int) {
	fmt.Fprintf(t.writer, "[%d] current configuration: %s\n", round, FormatPiles(piles))
}

func (t *TextMonitor) OnComplete(int) {
	fmt.Fprintln(t.writer, "Done!")
}

// RecordingMonitor keeps every configuration it sees.
type RecordingMonitor struct {
	Initial []int
	Rounds  [][]int
	Done    bool
}

func (r *RecordingMonitor) OnStart(initial []int) {
	r.Initial = slices.Clone(initial)
}

func (r *RecordingMonitor) OnRound(_ int, piles []int) {
	r.Rounds = append(r.Rounds, slices.Clone(piles))
}

func (r *RecordingMonitor) OnComplete(int) {
	r.Done = true
}
