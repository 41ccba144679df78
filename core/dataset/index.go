package dataset

import "strings"

// IndexOptions controls which attendee rows enter the index.
type IndexOptions struct {
	// MatchBlankEmails indexes rows whose email is empty or whitespace under
	// their raw key, so they can match blank registrant emails.
	// When off, such rows are held apart and never matched.
	MatchBlankEmails bool
}

// AttendeeIndex maps normalized email to attendee record.
// It holds at most one record per key: a later row with the same key replaces
// the earlier one, but the key keeps the position where it was first seen.
// Rows with a blank email are kept in read order outside the key space.
type AttendeeIndex struct {
	emailColumn string
	opts        IndexOptions
	order       []string
	byKey       map[string]Attendee
	unkeyed     []Attendee
	skipped     int
}

// NewAttendeeIndex creates an empty index reading emails from emailColumn.
func NewAttendeeIndex(emailColumn string, opts IndexOptions) *AttendeeIndex {
	return &AttendeeIndex{
		emailColumn: emailColumn,
		opts:        opts,
		byKey:       make(map[string]Attendee),
	}
}

// Put adds or replaces the record for the attendee's normalized email.
// It reports false when the row was not keyed: either its email is blank, in
// which case it is kept as an unkeyed attendee, or every field is blank and
// the row is dropped.
func (x *AttendeeIndex) Put(a Attendee) bool {
	email := a[x.emailColumn]
	if !x.opts.MatchBlankEmails && isBlank(email) {
		if a.isEmpty() {
			x.skipped++
			return false
		}
		x.unkeyed = append(x.unkeyed, a)
		return false
	}

	key := NormalizeEmail(email)
	if _, exists := x.byKey[key]; !exists {
		x.order = append(x.order, key)
	}
	x.byKey[key] = a
	return true
}

// Get returns the record for a normalized email.
func (x *AttendeeIndex) Get(key string) (Attendee, bool) {
	a, ok := x.byKey[key]
	return a, ok
}

// Has reports whether a normalized email is in the index.
func (x *AttendeeIndex) Has(key string) bool {
	_, ok := x.byKey[key]
	return ok
}

// Keys returns the normalized emails in first-seen order.
func (x *AttendeeIndex) Keys() []string {
	keys := make([]string, len(x.order))
	copy(keys, x.order)
	return keys
}

// Len returns the number of distinct normalized emails.
func (x *AttendeeIndex) Len() int {
	return len(x.byKey)
}

// Unkeyed returns the attendees with a blank email, in read order.
func (x *AttendeeIndex) Unkeyed() []Attendee {
	out := make([]Attendee, len(x.unkeyed))
	copy(out, x.unkeyed)
	return out
}

// Skipped returns how many rows were dropped because every field was blank.
func (x *AttendeeIndex) Skipped() int {
	return x.skipped
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (a Attendee) isEmpty() bool {
	for _, v := range a {
		if !isBlank(v) {
			return false
		}
	}
	return true
}
