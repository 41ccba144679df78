// Package report serializes a reconciled registration list.
//
// WriteCSV emits the original registration columns in their original order,
// followed by the attended and attendance duration columns. Synthesized rows
// come after every original row. Rows end in CRLF.
//
// MarshalSummary renders the attendance figures, either as the human readable
// text block or as YAML for scripts.
package report
