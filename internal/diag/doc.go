// Package diag defines the diagnostic model shared by the tokenizer, the
// syntax check and the translation pipeline.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer and the optional syntax pre-check.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     such as LEX1002.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. The lexer
// constructs a ReportBuilder via ReportError and chains WithNote before
// calling Emit. diag.BagReporter aggregates diagnostics into a Bag, which
// supports sorting, deduplication and first-error lookup.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics with a source excerpt and caret.
//   - internal/translate: turns the first lexical error into a LexicalError.
//   - internal/driver: collects bags per file for batch conversion.
package diag
