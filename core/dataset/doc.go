// Package dataset loads the two input lists.
//
// The registration list keeps its column order, because the report header is
// derived from it. The attendee list is reduced to an AttendeeIndex keyed by
// lower-cased email; duplicate emails collapse to the last row read.
// Attendees with a blank email are not keyed. They cannot match a
// registrant, but the index still hands them to the engine so they appear
// in the report. Rows with nothing but blanks are dropped.
//
// Both loaders check the header against the field mapping before reading any
// data and fail with ErrMissingColumn when a mapped column is absent. A row
// whose field count differs from the header is an error too: a partial list
// would silently skew the attendance figures.
package dataset
