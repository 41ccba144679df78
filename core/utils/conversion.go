package utils

import (
	"fmt"
	"strings"
)

// ParseBool converts a flag value to bool.
// It accepts the spellings found in spreadsheets and INI files: true/false,
// yes/no, on/off, y/n, t/f and 1/0, in any case. An empty value is false.
func ParseBool(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "", "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("cannot parse %q as a boolean", val)
	}
}

// IsTruthy reports whether val parses to true. Unparseable values are false.
func IsTruthy(val string) bool {
	b, err := ParseBool(val)
	return err == nil && b
}
