package mapping

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-ini/ini"
)

// Layer is one partial configuration source. A layer only carries the keys it
// defines; resolution falls through to earlier layers for everything else.
type Layer struct {
	// Name identifies the layer in diagnostics (builtin, a file path, ...).
	Name string
	// Sections maps a section name to its key/value pairs. Keys are upper case.
	Sections map[string]map[string]string
}

// Builtin returns the hard-coded defaults layer.
func Builtin() Layer {
	return Layer{
		Name: "builtin",
		Sections: map[string]map[string]string{
			SectionDefault: {
				KeyEmail:        "Email",
				KeyFirstName:    "First Name",
				KeyLastName:     "Last Name",
				KeyAttended:     "Attended",
				KeyDuration:     "Attendance Duration",
				KeyTrimQuotes:   "yes",
				KeyQuoteChar:    `"`,
				KeyNotAvailable: "N/A",
			},
			SectionRegistrants: {},
			SectionAttendees:   {},
		},
	}
}

// Get returns the value a layer defines for section/key.
func (l Layer) Get(section, key string) (string, bool) {
	values, ok := l.Sections[section]
	if !ok {
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

// ParseLayer parses an INI formatted override source.
// Key names are case-insensitive; section names are not. Sections other than
// DEFAULT, REGISTRANTS and ATTENDEES are ignored.
func ParseLayer(name string, r io.Reader) (Layer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layer{}, fmt.Errorf("failed to read config %s: %w", name, err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		// Column names may legitimately contain '#' or ';'.
		IgnoreInlineComment: true,
		// The quote trimming pass needs to see the quotes.
		PreserveSurroundedQuote: true,
		// Field names may end in a backslash.
		IgnoreContinuation: true,
	}, data)
	if err != nil {
		return Layer{}, fmt.Errorf("failed to parse config %s: %w", name, err)
	}

	layer := Layer{Name: name, Sections: map[string]map[string]string{}}
	for _, section := range f.Sections() {
		sname := section.Name()
		switch sname {
		case SectionDefault, SectionRegistrants, SectionAttendees:
		default:
			continue
		}
		values := layer.Sections[sname]
		if values == nil {
			values = map[string]string{}
			layer.Sections[sname] = values
		}
		for _, key := range section.Keys() {
			values[strings.ToUpper(key.Name())] = key.Value()
		}
	}

	return layer, nil
}
