package metrics

import "time"

// Noop is a Recorder that discards all events. Useful in tests.
type Noop struct{}

// NewNoop creates a no-op Recorder.
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) RecordHTTPRequest(string, string, int, time.Duration) {}

func (*Noop) RecordSearchResults(int) {}

func (*Noop) RecordStatsSnapshot() {}
