package cmd

import (
	"fmt"
	"io"

	"grip-attendance/core/config"
	"grip-attendance/core/logger"
	"grip-attendance/core/mapping"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// genConfigCmd writes a configuration template with every default filled in.
var genConfigCmd = &cobra.Command{
	Use:   "gen-config <new_config_file.cfg>",
	Short: "Generate a configuration file template",
	Long: `Generate a configuration file template holding the built-in defaults for
the [REGISTRANTS] and [ATTENDEES] sections. Edit the values on the right hand
side of the = sign to match the column headings of your lists.

Example:
  gen-config attendance.cfg`,
	Args: cobra.ExactArgs(1),
	RunE: runGenConfig,
}

func init() {
	RootCmd.AddCommand(genConfigCmd)
}

func runGenConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	path := args[0]
	l.Info("Generating config file template", zap.String("path", path))

	return writeFile(path, func(w io.Writer) error {
		return mapping.WriteTemplate(w, cfg.Attendance.DefaultConfigPath)
	})
}
