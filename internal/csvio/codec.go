package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/MikeSquared-Agency/Shortlist/internal/schema"
	"github.com/MikeSquared-Agency/Shortlist/internal/table"
)

// ErrMissingProgramColumn rejects an import whose header lacks the mandatory
// Program column.
var ErrMissingProgramColumn = errors.New("csv missing Program column")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Import parses a CSV upload into a category list and table rows.
//
// The header must contain a Program column. Every other header cell except
// the reserved Final Score column becomes a category, in file order; empty
// and repeated header names are dropped. Missing and empty cells default to
// "3"; an empty Program cell stays empty — the default is a rating, not a
// name. The returned slices are fresh, so a caller that rejects the import
// keeps its existing state untouched.
func Import(data []byte) ([]string, []table.Row, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrMissingProgramColumn
	}

	header := records[0]
	programIdx := -1
	for i, name := range header {
		if name == schema.ProgramColumn {
			programIdx = i
			break
		}
	}
	if programIdx == -1 {
		return nil, nil, ErrMissingProgramColumn
	}

	var categories []string
	colFor := make(map[int]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if name == schema.ProgramColumn || name == schema.FinalScoreColumn || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, name)
		colFor[i] = name
	}

	rows := make([]table.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		values := make(map[string]string, len(categories))
		for i := range header {
			name, ok := colFor[i]
			if !ok {
				continue
			}
			cell := ""
			if i < len(rec) {
				cell = rec[i]
			}
			if cell == "" {
				cell = table.DefaultCell
			}
			values[name] = cell
		}
		row := table.Row{Values: values}
		if programIdx < len(rec) {
			row.Program = rec[programIdx]
		}
		rows = append(rows, row)
	}

	return categories, rows, nil
}

// Export serializes rows as the editable table: a Program column plus the
// given categories in order, one line per row, trailing newline. Derived
// scores are never written. Callers pass normalized rows, so defaults are
// already applied; any cell still missing is written as the default.
func Export(rows []table.Row, categories []string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(append([]string{schema.ProgramColumn}, categories...))

	for _, r := range rows {
		rec := make([]string, 0, len(categories)+1)
		rec = append(rec, r.Program)
		for _, c := range categories {
			if v, ok := table.ReadValue(r, c); ok {
				rec = append(rec, v)
			} else {
				rec = append(rec, table.DefaultCell)
			}
		}
		_ = w.Write(rec)
	}
	w.Flush()
	return buf.Bytes()
}
