package attendance

// Config holds the run settings that are not part of the field mapping.
type Config struct {
	// DefaultConfigPath is the environment-local mapping override file.
	DefaultConfigPath string `mapstructure:"default_config" default:"./attendance.cfg"`
	// OutputSuffix replaces the registration file extension to name the report.
	OutputSuffix string `mapstructure:"output_suffix" default:"_attendance.csv"`
	// MatchBlankEmails lets blank emails take part in matching.
	MatchBlankEmails bool `mapstructure:"match_blank_emails" default:"false"`
	// Summary is the format of the attendance figures (text or yaml).
	Summary string `mapstructure:"summary" default:"text"`
}
