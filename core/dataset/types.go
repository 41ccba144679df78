package dataset

import (
	"errors"
	"strings"

	"grip-attendance/core/mapping"
)

// DefaultDuration is the attendance duration of a registrant who did not attend.
const DefaultDuration = "0.0 mins"

var (
	// ErrMissingColumn is returned when a file lacks a column the field mapping requires.
	ErrMissingColumn = errors.New("missing column")
	// ErrInvalidValue is returned when a cell cannot be interpreted.
	ErrInvalidValue = errors.New("invalid value")
)

// Registrant is one row of the registration list plus the two attendance fields.
// Values keeps every original column by name; column order lives in Registrants.Columns.
type Registrant struct {
	// Values maps column name to cell value.
	Values map[string]string
	// Attended is true once the registrant has been matched to an attendee.
	Attended bool
	// Duration is the attendance duration, DefaultDuration until matched.
	Duration string
	// Synthesized marks rows created for attendees who never registered.
	Synthesized bool
}

// NewSynthesized creates a registrant for an unregistered attendee: every
// column holds the notAvailable sentinel and the row is marked attended.
// Callers overwrite the columns they know.
func NewSynthesized(columns []string, notAvailable string) *Registrant {
	values := make(map[string]string, len(columns))
	for _, col := range columns {
		values[col] = notAvailable
	}
	return &Registrant{
		Values:      values,
		Attended:    true,
		Duration:    notAvailable,
		Synthesized: true,
	}
}

// Get returns the value of a column, or "" if the row has no such column.
func (r *Registrant) Get(column string) string {
	return r.Values[column]
}

// Registrants is the ordered registration list.
type Registrants struct {
	// Columns are the header names in file order.
	Columns []string
	// Rows are the registrants in file order; synthesized rows are appended.
	Rows []*Registrant
}

// Len returns the number of rows, synthesized rows included.
func (s *Registrants) Len() int {
	return len(s.Rows)
}

// Append adds a row at the end of the list.
func (s *Registrants) Append(r *Registrant) {
	s.Rows = append(s.Rows, r)
}

// OutputColumns returns the report header: the original columns followed by
// the attended and duration columns, unless the file already carried them.
func (s *Registrants) OutputColumns(m mapping.FieldMapping) []string {
	cols := make([]string, 0, len(s.Columns)+2)
	cols = append(cols, s.Columns...)
	for _, extra := range []string{m.Attended, m.Duration} {
		if !contains(s.Columns, extra) {
			cols = append(cols, extra)
		}
	}
	return cols
}

// Attendee is one row of the attendee list, keyed by column name.
type Attendee map[string]string

// NormalizeEmail returns the matching key for an email address.
// Matching is case-insensitive and nothing else: no trimming, no Unicode folding.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
