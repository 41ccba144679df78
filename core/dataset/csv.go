package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// table is a parsed CSV source.
type table struct {
	header []string
	rows   [][]string
}

// readTable reads a comma separated source whose first row is the header.
// Every row must have as many fields as the header.
func readTable(r io.Reader) (*table, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}

	t := &table{header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t.rows = append(t.rows, record)
	}

	return t, nil
}

// require checks that every named column is in the header.
func (t *table) require(dataset string, columns ...string) error {
	for _, col := range columns {
		if !contains(t.header, col) {
			return fmt.Errorf("%w: %s file has no %q column", ErrMissingColumn, dataset, col)
		}
	}
	return nil
}

// record returns row i as a column to value map.
func (t *table) record(i int) map[string]string {
	values := make(map[string]string, len(t.header))
	for j, col := range t.header {
		values[col] = t.rows[i][j]
	}
	return values
}
