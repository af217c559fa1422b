package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Tracer receives events. Implementations must be safe for concurrent use:
// a batch conversion emits from every worker.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
	Close() error
}

// Enabled reports whether t records anything at all.
func Enabled(t Tracer) bool {
	return t != nil && t.Level() > LevelOff
}

type nopTracer struct{}

func (nopTracer) Emit(*Event)  {}
func (nopTracer) Level() Level { return LevelOff }
func (nopTracer) Close() error { return nil }

// Nop drops every event.
var Nop Tracer = nopTracer{}

// Writer formats events onto an io.Writer as they arrive.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer // nil when the writer is not ours to close
	level  Level
	format Format
}

// NewWriter returns a tracer writing to w. w is never closed.
func NewWriter(w io.Writer, level Level, format Format) *Writer {
	if format == FormatAuto {
		format = FormatText
	}
	return &Writer{w: w, level: level, format: format}
}

// Open returns the tracer for a --trace value: "" or "-" is stderr, anything
// else a file that is created or truncated. A .ndjson or .jsonl file gets
// NDJSON unless format says otherwise. Level off gives Nop.
func Open(path string, level Level, format Format) (Tracer, error) {
	if level == LevelOff {
		return Nop, nil
	}
	if format == FormatAuto && (strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".jsonl")) {
		format = FormatNDJSON
	}
	if path == "" || path == "-" {
		return NewWriter(os.Stderr, level, format), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	t := NewWriter(f, level, format)
	t.closer = f
	return t, nil
}

// Emit writes ev if its scope passes the level. Write errors are dropped:
// a broken trace file must not fail a translation.
func (t *Writer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = NextSeq()
	_, _ = t.w.Write(FormatEvent(ev, t.format))
}

func (t *Writer) Level() Level { return t.level }

// Close closes the output file opened by Open.
func (t *Writer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	return err
}
