package attendance

import (
	"io"

	"grip-attendance/core/dataset"
	"grip-attendance/core/mapping"
	"grip-attendance/core/reconcile"
	"grip-attendance/core/report"

	"go.uber.org/zap"
)

// Pipeline runs one reconciliation over already opened inputs:
// load registrants, load attendees, reconcile, emit.
type Pipeline struct {
	mapping mapping.Resolved
	index   dataset.IndexOptions
	engine  *reconcile.Engine
	log     *zap.Logger
}

// New creates a pipeline for a resolved field mapping.
func New(m mapping.Resolved, cfg Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		mapping: m,
		index:   dataset.IndexOptions{MatchBlankEmails: cfg.MatchBlankEmails},
		engine:  reconcile.NewEngine(m, log),
		log:     log,
	}
}

// LoadRegistrants reads the registration list.
func (p *Pipeline) LoadRegistrants(r io.Reader) (*dataset.Registrants, error) {
	regs, err := dataset.LoadRegistrants(r, p.mapping.Registrants)
	if err != nil {
		return nil, err
	}
	p.log.Debug("Loaded registrants", zap.Int("rows", regs.Len()), zap.Strings("columns", regs.Columns))
	return regs, nil
}

// LoadAttendees reads the attendee list into an index.
func (p *Pipeline) LoadAttendees(r io.Reader) (*dataset.AttendeeIndex, error) {
	idx, err := dataset.LoadAttendees(r, p.mapping.Attendees, p.index)
	if err != nil {
		return nil, err
	}
	if n := len(idx.Unkeyed()); n > 0 {
		p.log.Warn("Attendee rows without an email were not matched", zap.Int("rows", n))
	}
	if n := idx.Skipped(); n > 0 {
		p.log.Debug("Empty attendee rows ignored", zap.Int("rows", n))
	}
	p.log.Debug("Loaded attendees", zap.Int("unique_emails", idx.Len()))
	return idx, nil
}

// Reconcile joins the lists; regs is extended in place.
func (p *Pipeline) Reconcile(regs *dataset.Registrants, idx *dataset.AttendeeIndex) *reconcile.Result {
	return p.engine.Reconcile(regs, idx)
}

// WriteReport emits the attendance report.
func (p *Pipeline) WriteReport(w io.Writer, regs *dataset.Registrants) error {
	return report.WriteCSV(w, regs, p.mapping.Registrants)
}

// Run performs every step over in-memory readers and a writer. Nothing is
// written to out unless both lists load. The CLI calls the steps one by one
// instead, so each input stays open only for its own load and the report file
// is created only after reconciliation.
func (p *Pipeline) Run(registrants, attendees io.Reader, out io.Writer) (*reconcile.Result, error) {
	regs, err := p.LoadRegistrants(registrants)
	if err != nil {
		return nil, err
	}
	idx, err := p.LoadAttendees(attendees)
	if err != nil {
		return nil, err
	}

	result := p.Reconcile(regs, idx)

	if err := p.WriteReport(out, regs); err != nil {
		return nil, err
	}
	return result, nil
}
