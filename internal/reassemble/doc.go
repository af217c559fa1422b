// Package reassemble turns a token stream back into source text.
//
// Tokens carry their original positions and the exact text that preceded
// them, so an unmodified stream reassembles byte for byte. Where a token was
// moved, the gap is filled with spaces and backslash continuations.
package reassemble
