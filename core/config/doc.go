// Package config provides process configuration for grip-attendance.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file loaded first through godotenv. Defaults come from
// the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Log: level, format and output of the diagnostics (LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT)
//   - Storage: S3/MinIO endpoint and credentials for s3:// inputs (STORAGE_ENDPOINT, ...)
//   - Attendance: default mapping file, report suffix, blank email matching,
//     summary format (ATTENDANCE_DEFAULT_CONFIG, ATTENDANCE_OUTPUT_SUFFIX, ...)
//
// Column names are not configured here. They live in the layered INI files
// resolved by core/mapping.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Attendance.OutputSuffix)
package config
