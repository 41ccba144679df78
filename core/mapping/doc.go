// Package mapping resolves the field mapping: which column of each input file
// plays which logical role (email, first name, last name, attended flag,
// attendance duration) and which sentinel marks unknown values.
//
// # Layers
//
// Configuration is built from up to three layers, folded left to right:
//
//  1. Builtin defaults (Builtin).
//  2. An environment-local override file, usually ./attendance.cfg.
//  3. A user-specified override file.
//
// Each layer holds only what it defines. Layers are INI text with a DEFAULT,
// a REGISTRANTS and an ATTENDEES section; a key set in REGISTRANTS or
// ATTENDEES beats any DEFAULT value. Missing override files are skipped.
//
// # Quote Trimming
//
// INI values lose trailing blanks, so field names that end in blanks must be
// quoted. With TRIM_QUOTES = yes and QUOTE_CHAR set, a value wrapped on both
// ends by the quote character is unquoted after resolution.
//
// # Usage
//
//	resolved, err := mapping.NewLoader(log).Resolve("./attendance.cfg", userPath)
//	email := resolved.Registrants.Email
package mapping
