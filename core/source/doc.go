// Package source resolves where the input lists come from.
//
// A location is either a local path or an s3://bucket/key object read through
// core/storage. The storage client is only created when a remote location is
// opened, so purely local runs need no storage configuration.
//
// Check verifies every input before any is read; Open hands out readers that
// the caller closes. OutputPath derives the report file name from the
// registration list: reg_list.csv becomes reg_list_attendance.csv.
package source
