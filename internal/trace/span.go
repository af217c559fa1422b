package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns the next global event sequence number.
func NextSeq() uint64 { return seqCounter.Add(1) }

// Span is one traced operation: a command, a translation step or one file.
// A span filtered out by the level is inert and all methods are no-ops.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	path    string
	started time.Time
	extra   map[string]string
}

// StartSpan begins a child of the span active in ctx, using the tracer
// attached to ctx, and returns ctx carrying the new span. A non-empty path
// names the source file the span works on; children inherit it.
func StartSpan(ctx context.Context, scope Scope, name, path string) (context.Context, *Span) {
	st := stateOf(ctx)
	if path == "" {
		path = st.span.Path
	}
	if !Enabled(st.tracer) || !st.tracer.Level().ShouldEmit(scope) {
		// отфильтрованный span не должен рвать цепочку родителей
		return withSpan(ctx, SpanContext{SpanID: st.span.SpanID, Path: path}), &Span{}
	}
	s := &Span{
		tracer:  st.tracer,
		id:      spanCounter.Add(1),
		parent:  st.span.SpanID,
		scope:   scope,
		name:    name,
		path:    path,
		started: time.Now(),
	}
	s.emit(KindBegin, s.started, "", nil)
	return withSpan(ctx, SpanContext{SpanID: s.id, Path: path}), s
}

func (s *Span) emit(kind Kind, at time.Time, detail string, extra map[string]string) {
	s.tracer.Emit(&Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Path:     s.path,
		Name:     s.name,
		Detail:   detail,
		Extra:    extra,
	})
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.id == 0 {
		return 0
	}
	now := time.Now()
	s.emit(KindEnd, now, detail, s.extra)
	return now.Sub(s.started)
}

// Finish ends the span with detail "failed" and the error text when err is
// non-nil, otherwise with ok.
func (s *Span) Finish(err error, ok string) {
	if err != nil {
		s.WithExtra("error", err.Error()).End("failed")
		return
	}
	s.End(ok)
}

// WithExtra attaches a key/value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// PointContext emits an instant event under the span active in ctx.
func PointContext(ctx context.Context, scope Scope, name, detail string) {
	st := stateOf(ctx)
	if !Enabled(st.tracer) || !st.tracer.Level().ShouldEmit(scope) {
		return
	}
	st.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: st.span.SpanID,
		Path:     st.span.Path,
		Name:     name,
		Detail:   detail,
	})
}
