package report

import (
	"fmt"
	"strings"

	"grip-attendance/core/reconcile"

	"github.com/goccy/go-yaml"
)

// Summary formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// FormatCounts renders the attendance figures for a terminal.
func FormatCounts(c reconcile.Counts) string {
	var b strings.Builder
	b.WriteString("Attendance Figures:\n")
	fmt.Fprintf(&b, "    Registrations:    %d\n", c.Registrants)
	fmt.Fprintf(&b, "    Total Attendees:  %d\n", c.Attendees)
	fmt.Fprintf(&b, "    Registered No Shows:       %d\n", c.RegNoAttend)
	fmt.Fprintf(&b, "    Non-registered Attendees:  %d\n", c.AttendNoReg)
	return b.String()
}

// MarshalSummary renders a run result in the requested format.
// The yaml form includes the unregistered emails; the text form only the counts.
func MarshalSummary(result *reconcile.Result, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return []byte(FormatCounts(result.Counts)), nil
	case FormatYAML:
		out, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal summary: %w", err)
		}
		return out, nil
	default:
		return nil, CheckFormat(format)
	}
}

// CheckFormat validates a summary format before any work is done.
func CheckFormat(format string) error {
	switch strings.ToLower(format) {
	case "", FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown summary format %q (want %s or %s)", format, FormatText, FormatYAML)
	}
}
