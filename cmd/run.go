package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"grip-attendance/core/attendance"
	"grip-attendance/core/config"
	"grip-attendance/core/dataset"
	"grip-attendance/core/logger"
	"grip-attendance/core/mapping"
	"grip-attendance/core/reconcile"
	"grip-attendance/core/report"
	"grip-attendance/core/source"
	"grip-attendance/core/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the root command
	outputPath    string
	summaryFormat string
)

func runAttendance(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if summaryFormat != "" {
		cfg.Attendance.Summary = summaryFormat
	}
	if err := report.CheckFormat(cfg.Attendance.Summary); err != nil {
		return err
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l = logger.WithRunID(l, uuid.NewString())

	regLoc, err := source.Parse(args[0])
	if err != nil {
		return err
	}
	attLoc, err := source.Parse(args[1])
	if err != nil {
		return err
	}
	var userConfig string
	if len(args) == 3 {
		userConfig = args[2]
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout())
	defer cancel()

	// Step 0: Check inputs before touching configuration or data
	opener := source.NewOpener(func() (storage.Client, error) {
		return storage.NewClient(cfg.Storage)
	})
	for _, loc := range []source.Location{regLoc, attLoc} {
		if err := opener.Check(ctx, loc); err != nil {
			return err
		}
		l.Info("Opened", zap.Stringer("location", loc))
	}

	// Step 1: Resolve the field mapping
	resolved, err := mapping.NewLoader(l).Resolve(cfg.Attendance.DefaultConfigPath, userConfig)
	if err != nil {
		return fmt.Errorf("failed to resolve field mapping: %w", err)
	}

	pipeline := attendance.New(resolved, cfg.Attendance, l)

	// Step 2: Load both lists
	var regs *dataset.Registrants
	err = withSource(ctx, opener, regLoc, func(r io.Reader) error {
		var loadErr error
		regs, loadErr = pipeline.LoadRegistrants(r)
		return loadErr
	})
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", regLoc, err)
	}

	var idx *dataset.AttendeeIndex
	err = withSource(ctx, opener, attLoc, func(r io.Reader) error {
		var loadErr error
		idx, loadErr = pipeline.LoadAttendees(r)
		return loadErr
	})
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", attLoc, err)
	}

	// Step 3: Reconcile
	result := pipeline.Reconcile(regs, idx)

	// Step 4: Emit
	path := outputPath
	if path == "" {
		path = source.OutputPath(regLoc, cfg.Attendance.OutputSuffix)
	}
	if err := writeFile(path, func(w io.Writer) error {
		return pipeline.WriteReport(w, regs)
	}); err != nil {
		return err
	}
	l.Info("Wrote attendance report", zap.String("path", path), zap.Int("rows", regs.Len()))

	printReconcileReport(l, result)

	summary, err := report.MarshalSummary(result, cfg.Attendance.Summary)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(summary)
	return err
}

// withSource opens loc for the duration of fn.
func withSource(ctx context.Context, opener *source.Opener, loc source.Location, fn func(io.Reader) error) error {
	rc, err := opener.Open(ctx, loc)
	if err != nil {
		return err
	}
	defer rc.Close()
	return fn(rc)
}

// writeFile creates path and fills it with fn. A failed write leaves no file behind.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return fn(f)
}

// printReconcileReport logs the attendance figures.
func printReconcileReport(l *zap.Logger, result *reconcile.Result) {
	c := result.Counts
	l.Info("Reconciliation report",
		zap.Int("registrants", c.Registrants),
		zap.Int("attendees", c.Attendees),
		zap.Int("reg_no_attend", c.RegNoAttend),
		zap.Int("attend_no_reg", c.AttendNoReg),
	)
}
