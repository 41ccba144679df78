package dataset

import (
	"fmt"
	"io"

	"grip-attendance/core/mapping"
	"grip-attendance/core/utils"
)

// LoadRegistrants reads the registration list.
// Every row starts as not attended with DefaultDuration. When the file already
// carries the attended and duration columns, as a previous report does, their
// values are kept instead.
func LoadRegistrants(r io.Reader, m mapping.FieldMapping) (*Registrants, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read registrants: %w", err)
	}
	if err := t.require("registration", m.Email, m.FirstName, m.LastName); err != nil {
		return nil, err
	}

	hasAttended := contains(t.header, m.Attended)
	hasDuration := contains(t.header, m.Duration)

	regs := &Registrants{
		Columns: t.header,
		Rows:    make([]*Registrant, 0, len(t.rows)),
	}
	for i := range t.rows {
		reg := &Registrant{
			Values:   t.record(i),
			Duration: DefaultDuration,
		}
		if hasAttended {
			attended, err := utils.ParseBool(reg.Values[m.Attended])
			if err != nil {
				// Row numbers are 1-based and the header is row 1.
				return nil, fmt.Errorf("%w: registration row %d column %q: %v", ErrInvalidValue, i+2, m.Attended, err)
			}
			reg.Attended = attended
		}
		if hasDuration {
			reg.Duration = reg.Values[m.Duration]
		}
		regs.Rows = append(regs.Rows, reg)
	}

	return regs, nil
}

// LoadAttendees reads the attendee list into an index keyed by normalized email.
func LoadAttendees(r io.Reader, m mapping.FieldMapping, opts IndexOptions) (*AttendeeIndex, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendees: %w", err)
	}
	if err := t.require("attendee", m.Email, m.FirstName, m.LastName, m.Duration); err != nil {
		return nil, err
	}

	idx := NewAttendeeIndex(m.Email, opts)
	for i := range t.rows {
		idx.Put(Attendee(t.record(i)))
	}

	return idx, nil
}
