// Package reconcile matches a registration list against an attendee list.
//
// Matching is by normalized (lower-cased) email only. The engine works in a
// single pass over the registrants followed by a set difference over the
// attendee index:
//
//  1. Every registrant whose email is in the index is marked attended and
//     takes the attendee's duration.
//  2. Registrants not in the index keep their defaults.
//  3. Every attendee key that no registrant matched gets a synthesized
//     registrant row, appended after the original rows. Fields the attendee
//     list does not provide hold the NOT_AVAIL sentinel.
//  4. Attendees listed without an email are synthesized the same way, after
//     the keyed ones. They count as attendees who did not register.
//
// # Counts
//
// Registrants is counted before synthesis. RegNoAttend is derived as
// Registrants - (Attendees - AttendNoReg), not counted row by row. The
// subtracted term is the number of distinct matched emails, so two
// registrations of the same attendee leave one of them counted as a no-show
// even though both rows are marked attended.
//
// # Usage
//
//	engine := reconcile.NewEngine(resolved, log)
//	result := engine.Reconcile(registrants, index)
//	fmt.Println(result.Counts.AttendNoReg)
package reconcile
