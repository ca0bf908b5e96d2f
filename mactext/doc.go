// Package mactext provides the text encoding bridge between legacy
// script-coded byte strings and native Go strings.
//
// Legacy documents store text as length-prefixed byte strings whose
// interpretation depends on the document's script system. A Selection names
// the active script; decoding goes through the golang.org/x/text encodings
// (MacRoman, Mac Cyrillic, Shift JIS).
//
// The process-wide active selection is set once at startup from platform or
// document hints via SetActive and read through Active. Decoding functions
// take a Selection parameter explicitly so tests can inject one instead of
// relying on the shared process state.
package mactext
