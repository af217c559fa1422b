package trace

import "context"

type ctxKey struct{}

// state is what a context carries: the tracer and the innermost span.
type state struct {
	tracer Tracer
	span   SpanContext
}

// SpanContext identifies the active span and the file it works on.
type SpanContext struct {
	SpanID uint64
	Path   string
}

func stateOf(ctx context.Context) state {
	if ctx != nil {
		if st, ok := ctx.Value(ctxKey{}).(state); ok {
			return st
		}
	}
	return state{tracer: Nop}
}

// WithTracer attaches t to ctx. The active span, if any, is kept.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	st := stateOf(ctx)
	st.tracer = t
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the tracer in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return stateOf(ctx).tracer
}

// CurrentSpan returns the active span of ctx; zero when there is none.
func CurrentSpan(ctx context.Context) SpanContext {
	return stateOf(ctx).span
}

func withSpan(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	st := stateOf(ctx)
	st.span = sc
	return context.WithValue(ctx, ctxKey{}, st)
}
