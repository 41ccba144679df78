package cmd

import (
	"fmt"
	"os"
	"strings"

	"grip-attendance/core/logger"
	"grip-attendance/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command: reconcile a registration list with an attendee list.
var RootCmd = &cobra.Command{
	Use:   "grip-attendance <reg_list.csv> <attend_list.csv> [config_file.cfg]",
	Short: "Generate an attendance report from registration and attendee lists",
	Long: `grip-attendance matches an event registration list against the list of
actual attendees and writes an attendance report.

The report has the columns of the registration list plus "Attended" and
"Attendance Duration". Attendees who never registered are appended as new
rows; fields the attendee list cannot provide hold "N/A".

Matching is by email address, ignoring case.

Inputs are CSV files with a header row, given as local paths or as
s3://bucket/key objects. The report is written next to the registration list
with "_attendance" appended to its base name (reg_list.csv becomes
reg_list_attendance.csv) unless --output is given.

Column names are resolved from built-in defaults, then ./attendance.cfg if
present, then the optional config file argument. Run "gen-config" for a
template.

` + configHelp(),
	Args:          cobra.RangeArgs(2, 3),
	RunE:          runAttendance,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding without stack traces: one readable line per failure.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
			Output: "stderr",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default: registration list name + output suffix)")
	RootCmd.Flags().StringVar(&summaryFormat, "summary", "", "Attendance figures format: text or yaml (default from ATTENDANCE_SUMMARY)")
}

// configHelp renders the configuration file help for the command description.
func configHelp() string {
	var b strings.Builder
	b.WriteString("Configuration file:\n")
	for _, paragraph := range mapping.HelpText("./attendance.cfg") {
		b.WriteString("\n")
		for _, line := range mapping.Wrap(paragraph, 72) {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
