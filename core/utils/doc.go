// Package utils provides common utility functions for the grip-attendance application.
// It holds value conversions shared by the configuration and dataset packages.
package utils
