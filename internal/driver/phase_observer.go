package driver

import "time"

// EventKind reports what happened to one file of a batch.
type EventKind int

const (
	// EventStart indicates that a file has been picked up by a worker.
	EventStart EventKind = iota
	EventDone
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventDone:
		return "done"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event describes progress of ConvertDir.
type Event struct {
	Kind    EventKind
	Index   int
	Total   int
	Path    string
	Err     error
	Cached  bool
	Elapsed time.Duration
}

// ProgressSink receives events emitted during ConvertDir. It is called from
// worker goroutines and must be safe for concurrent use.
type ProgressSink func(Event)
