package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"grip-attendance/core/dataset"
	"grip-attendance/core/mapping"
)

// WriteCSV writes the attendance report: a header row, then one row per
// registrant in list order. Values are written as they are; no defaulting
// happens here.
func WriteCSV(w io.Writer, regs *dataset.Registrants, m mapping.FieldMapping) error {
	columns := regs.OutputColumns(m)

	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	record := make([]string, len(columns))
	for i, reg := range regs.Rows {
		for j, col := range columns {
			switch col {
			case m.Attended:
				record[j] = FormatAttended(reg.Attended)
			case m.Duration:
				record[j] = reg.Duration
			default:
				record[j] = reg.Get(col)
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

// FormatAttended renders the attended flag.
func FormatAttended(attended bool) string {
	if attended {
		return "True"
	}
	return "False"
}
