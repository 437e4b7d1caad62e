// Package splitter turns documents into ordered, bounded chunks.
//
// Splitting is recursive-character based: a prioritized separator list
// is tried until fragments fit the configured chunk size, and
// consecutive chunks share up to the configured overlap. Source code
// and markup types get structure-aware separator lists (function and
// class delimiters, headings) ahead of the generic
// paragraph/line/word fallbacks.
//
// A Splitter is a pure function of its inputs: no side effects, no
// retained state between calls.
package splitter
