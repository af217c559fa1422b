// Package trace records what piyathon does while it translates, converts and
// runs sources.
//
//	piyathon convert src --to local --trace=- --trace-level=phase
//	piyathon convert src --to local --trace=run.ndjson --trace-level=file
//
// LevelPhase emits command spans (convert, convert-dir, execute) and the
// translation steps under them (check, lex, rewrite, reassemble). LevelFile
// adds one span per file of a batch plus cache hits. LevelDebug emits
// everything.
//
// The tracer and the active span travel in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path, path)
//	defer func() { span.Finish(err, "") }()
//
// Child spans started from the returned context inherit the parent span and
// the file path, so every event of a batch can be attributed to its source.
package trace
