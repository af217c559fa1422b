// Package rewrite renames NAME tokens through a keyword table.
//
// Apply walks the stream with a cursor. Most tokens are decided one at a
// time; two idioms need lookahead and are decided together:
//
//   - "else" immediately followed by "if" becomes the single combined
//     keyword (elif) in either direction;
//   - "for" maps together with the first "in" at bracket depth zero on the
//     same logical line, so membership tests later on the line are left to
//     ordinary lookup.
package rewrite
