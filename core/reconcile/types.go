package reconcile

// Counts summarises a reconciliation run. It is computed once, after the join
// and synthesis pass, and not updated afterwards.
type Counts struct {
	// Registrants is the number of rows in the registration list, synthesized rows excluded.
	Registrants int `json:"registrants" yaml:"registrants"`

	// Attendees is the number of distinct normalized emails in the attendee
	// list plus the attendees listed without an email.
	Attendees int `json:"attendees" yaml:"attendees"`

	// RegNoAttend is Registrants - (Attendees - AttendNoReg).
	// It is derived rather than counted; see the package documentation.
	RegNoAttend int `json:"reg_no_attend" yaml:"reg_no_attend"`

	// AttendNoReg counts attendees with no matching registration.
	AttendNoReg int `json:"attend_no_reg" yaml:"attend_no_reg"`
}

// Result is the output of a reconciliation run besides the mutated registrant list.
type Result struct {
	// Counts provides aggregate figures.
	Counts Counts `json:"counts" yaml:"counts"`

	// Matched holds the normalized emails found in both lists, in registration order.
	Matched []string `json:"matched" yaml:"matched"`

	// Unregistered holds the normalized emails of attendees that never
	// registered, in the order their synthesized rows were appended.
	Unregistered []string `json:"unregistered" yaml:"unregistered"`

	// WithoutEmail counts attendees listed with a blank email. Each of them
	// was synthesized after the Unregistered rows and is included in
	// Counts.Attendees and Counts.AttendNoReg.
	WithoutEmail int `json:"without_email" yaml:"without_email"`
}
