package mapping

// Section names of the layered configuration.
const (
	SectionDefault     = "DEFAULT"
	SectionRegistrants = "REGISTRANTS"
	SectionAttendees   = "ATTENDEES"
)

// Configuration keys. The *_FIELD keys bind a logical role to a column name.
const (
	KeyEmail        = "EMAIL_FIELD"
	KeyFirstName    = "FIRST_NM_FIELD"
	KeyLastName     = "LAST_NM_FIELD"
	KeyAttended     = "ATTENDED_FIELD"
	KeyDuration     = "ATTEND_DUR_FIELD"
	KeyNotAvailable = "NOT_AVAIL"
	KeyTrimQuotes   = "TRIM_QUOTES"
	KeyQuoteChar    = "QUOTE_CHAR"
)

// roleKeys lists the keys that must resolve to a non-empty column name.
var roleKeys = []string{KeyEmail, KeyFirstName, KeyLastName, KeyAttended, KeyDuration}

// FieldMapping binds the logical roles of one dataset to its physical column names.
type FieldMapping struct {
	// Email is the column holding the email address (the matching key).
	Email string
	// FirstName is the column holding the first name.
	FirstName string
	// LastName is the column holding the last name.
	LastName string
	// Attended is the column that receives the attended flag.
	Attended string
	// Duration is the column holding the attendance duration.
	Duration string
	// NotAvailable is the sentinel written into fields unknown for a synthesized record.
	NotAvailable string
	// TrimQuotes reports whether quote trimming was enabled for the section.
	TrimQuotes bool
	// QuoteChar is the quote character used for trimming.
	QuoteChar string
}

// Column returns the column name bound to a role key, or "" for unknown keys.
func (f FieldMapping) Column(key string) string {
	switch key {
	case KeyEmail:
		return f.Email
	case KeyFirstName:
		return f.FirstName
	case KeyLastName:
		return f.LastName
	case KeyAttended:
		return f.Attended
	case KeyDuration:
		return f.Duration
	default:
		return ""
	}
}

// Resolved is the fully resolved mapping for both datasets.
type Resolved struct {
	Registrants FieldMapping
	Attendees   FieldMapping
}
