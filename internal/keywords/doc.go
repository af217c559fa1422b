// Package keywords holds the bidirectional name tables used by the
// translator: Python keywords, built-in names and dunder names mapped to
// their local spellings.
//
// A Table is immutable after New and safe for concurrent use. Thai returns
// the built-in Piyathon table; LoadFile reads alternate tables from TOML.
package keywords
