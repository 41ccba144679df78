package reconcile

import (
	"grip-attendance/core/dataset"
	"grip-attendance/core/mapping"

	"go.uber.org/zap"
)

// Engine joins the registration list against the attendee index.
type Engine struct {
	registrants mapping.FieldMapping
	attendees   mapping.FieldMapping
	log         *zap.Logger
}

// NewEngine creates an engine for the resolved field mapping.
func NewEngine(m mapping.Resolved, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		registrants: m.Registrants,
		attendees:   m.Attendees,
		log:         log,
	}
}

// Reconcile marks every registrant found in the index as attended, copies the
// attendance duration, and appends a synthesized row for each attendee that
// never registered. regs is mutated in place.
func (e *Engine) Reconcile(regs *dataset.Registrants, idx *dataset.AttendeeIndex) *Result {
	// Captured before synthesis appends anything.
	registered := regs.Len()

	matched := make(map[string]struct{})
	result := &Result{}

	for _, reg := range regs.Rows[:registered] {
		key := dataset.NormalizeEmail(reg.Get(e.registrants.Email))
		att, ok := idx.Get(key)
		if !ok {
			continue
		}
		reg.Attended = true
		reg.Duration = att[e.attendees.Duration]
		if _, seen := matched[key]; !seen {
			matched[key] = struct{}{}
			result.Matched = append(result.Matched, key)
		}
	}

	// Attendee set minus matched set, in index order.
	for _, key := range idx.Keys() {
		if _, ok := matched[key]; ok {
			continue
		}
		att, _ := idx.Get(key)
		regs.Append(e.synthesize(regs.Columns, att))
		result.Unregistered = append(result.Unregistered, key)
		e.log.Info("Unregistered attendee", zap.String("email", att[e.attendees.Email]))
	}

	// Attendees without an email can never match, but they did attend.
	for _, att := range idx.Unkeyed() {
		regs.Append(e.synthesize(regs.Columns, att))
		result.WithoutEmail++
		e.log.Info("Unregistered attendee",
			zap.String("email", att[e.attendees.Email]),
			zap.String("first_name", att[e.attendees.FirstName]),
			zap.String("last_name", att[e.attendees.LastName]),
		)
	}

	result.Counts = Counts{
		Registrants: registered,
		Attendees:   idx.Len() + result.WithoutEmail,
		AttendNoReg: len(result.Unregistered) + result.WithoutEmail,
	}
	result.Counts.RegNoAttend = result.Counts.Registrants - (result.Counts.Attendees - result.Counts.AttendNoReg)

	return result
}

// synthesize builds the registrant row for an attendee with no registration.
func (e *Engine) synthesize(columns []string, att dataset.Attendee) *dataset.Registrant {
	reg := dataset.NewSynthesized(columns, e.registrants.NotAvailable)
	reg.Values[e.registrants.Email] = att[e.attendees.Email]
	reg.Values[e.registrants.FirstName] = att[e.attendees.FirstName]
	reg.Values[e.registrants.LastName] = att[e.attendees.LastName]
	reg.Duration = att[e.attendees.Duration]
	reg.Attended = true
	return reg
}
