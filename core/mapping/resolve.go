package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"grip-attendance/core/utils"
)

// ErrUnresolvedRole is returned when a role has no column name after all layers are applied.
var ErrUnresolvedRole = errors.New("unresolved field role")

// Resolve folds the layers left to right into one mapping per dataset.
// A later layer overrides only the keys it defines. Within the fold a key set
// in a dataset section always wins over a DEFAULT value, whichever layer the
// DEFAULT came from. None of the input layers are modified.
func Resolve(layers ...Layer) (Resolved, error) {
	defaults := fold(layers, SectionDefault)

	regs, err := resolveSection(layers, defaults, SectionRegistrants)
	if err != nil {
		return Resolved{}, err
	}
	atts, err := resolveSection(layers, defaults, SectionAttendees)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{Registrants: regs, Attendees: atts}, nil
}

// fold merges one section across all layers.
func fold(layers []Layer, section string) map[string]string {
	out := map[string]string{}
	for _, l := range layers {
		for k, v := range l.Sections[section] {
			out[k] = v
		}
	}
	return out
}

func resolveSection(layers []Layer, defaults map[string]string, section string) (FieldMapping, error) {
	values := map[string]string{}
	for k, v := range defaults {
		values[k] = v
	}
	for k, v := range fold(layers, section) {
		values[k] = v
	}

	trim := utils.IsTruthy(values[KeyTrimQuotes])
	quote := values[KeyQuoteChar]
	if trim && quote != "" {
		for k, v := range values {
			values[k] = TrimQuotes(v, quote)
		}
	}

	m := FieldMapping{
		Email:        values[KeyEmail],
		FirstName:    values[KeyFirstName],
		LastName:     values[KeyLastName],
		Attended:     values[KeyAttended],
		Duration:     values[KeyDuration],
		NotAvailable: values[KeyNotAvailable],
		TrimQuotes:   trim,
		QuoteChar:    values[KeyQuoteChar],
	}

	for _, key := range roleKeys {
		if m.Column(key) == "" {
			return FieldMapping{}, fmt.Errorf("%w: %s in [%s]", ErrUnresolvedRole, key, section)
		}
	}

	return m, nil
}

// TrimQuotes strips quote from both ends of v when v is wrapped by it.
// quote must be a single character. Values shorter than two characters, or
// quoted on one side only, are returned unchanged.
func TrimQuotes(v, quote string) string {
	if utf8.RuneCountInString(quote) != 1 || utf8.RuneCountInString(v) < 2 {
		return v
	}
	if !strings.HasPrefix(v, quote) || !strings.HasSuffix(v, quote) {
		return v
	}
	return strings.Trim(v, quote)
}
