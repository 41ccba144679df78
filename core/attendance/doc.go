// Package attendance wires the attendance run together.
//
// A Pipeline is handed open readers for the two lists and a writer for the
// report; it never opens files itself. Steps run strictly one after the
// other, and the registrant list has a single writer (the reconcile engine)
// until the report is emitted.
package attendance
