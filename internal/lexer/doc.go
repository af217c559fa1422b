// Package lexer implements a CPython-compatible tokenizer for Python and
// Piyathon sources.
//
// The token stream follows the tokenize module of CPython 3.12: NAME, NUMBER,
// STRING, OP, COMMENT, NL, NEWLINE, INDENT, DEDENT, ENDMARKER and the PEP 701
// f-string tokens. Whitespace and backslash continuations are attached to the
// following token as Leading trivia, so the original text can be rebuilt
// byte for byte.
//
// Lexical errors are reported through Options.Reporter; the lexer recovers
// and always finishes the stream with ENDMARKER.
package lexer
