// Package token defines the lexical token kinds produced by the Python
// tokenizer and the leading trivia attached to each token.
// Invariants:
//   - Token.Text is the exact source text of the token (no normalization).
//     FSTRING_MIDDLE keeps doubled braces as written.
//   - Start/End are 1-based lines and 0-based byte columns; End points just
//     past the token. NEWLINE and NL end at column 0 of the next line.
//   - Leading holds the whitespace, form feeds and backslash continuations
//     between the previous token and this one. Comments are tokens, not trivia.
//   - DEDENT tokens are zero-width; INDENT carries the indentation text.
package token
