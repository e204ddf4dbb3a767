package table

import "errors"

// DefaultCell is the value stored for a rating that was never entered: the
// midpoint of the 0–5 scale.
const DefaultCell = "3"

// ErrRowIndex reports an Update or Delete aimed outside the current rows.
var ErrRowIndex = errors.New("row index out of range")

// Row is one scored program: a name plus raw cell text per category. Cells
// stay strings so storage is agnostic of numeric formatting; coercion happens
// at scoring time.
type Row struct {
	Program string            `json:"program"`
	Values  map[string]string `json:"values"`
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	values := make(map[string]string, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Row{Program: r.Program, Values: values}
}

// ReadValue returns the raw stored value for category and whether it is
// present. No coercion; the scoring engine owns that.
func ReadValue(r Row, category string) (string, bool) {
	v, ok := r.Values[category]
	return v, ok
}

// Table is the ordered, editable grid of programs × categories. Mutation is
// free-form: no global validation, duplicate program names allowed.
type Table struct {
	rows []Row
}

// New returns an empty table.
func New() *Table { return &Table{} }

// Len reports the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a deep copy of the current rows, so callers can never alias
// stored state.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// Append adds row at the end.
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row.Clone())
}

// Update replaces the row at index i.
func (t *Table) Update(i int, row Row) error {
	if i < 0 || i >= len(t.rows) {
		return ErrRowIndex
	}
	t.rows[i] = row.Clone()
	return nil
}

// Delete removes the row at index i.
func (t *Table) Delete(i int) error {
	if i < 0 || i >= len(t.rows) {
		return ErrRowIndex
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

// Replace swaps in rows wholesale; the grid editor writes its whole edited
// table back in one call.
func (t *Table) Replace(rows []Row) {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	t.rows = out
}

// AddColumn fills category with the default value on every row that does not
// already hold a value for it.
func (t *Table) AddColumn(category string) {
	for i := range t.rows {
		if t.rows[i].Values == nil {
			t.rows[i].Values = map[string]string{category: DefaultCell}
			continue
		}
		if _, ok := t.rows[i].Values[category]; !ok {
			t.rows[i].Values[category] = DefaultCell
		}
	}
}

// DropColumns deletes the named categories from every row. Absent columns are
// not an error.
func (t *Table) DropColumns(categories []string) {
	for i := range t.rows {
		for _, c := range categories {
			delete(t.rows[i].Values, c)
		}
	}
}

// Normalized returns a copy of the rows reindexed to exactly the given
// schema: every schema category present, missing cells filled with the
// default, columns outside the schema dropped. The stored rows are untouched,
// which keeps recompute side-effect free.
func (t *Table) Normalized(schema []string) []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		values := make(map[string]string, len(schema))
		for _, c := range schema {
			if v, ok := r.Values[c]; ok {
				values[c] = v
			} else {
				values[c] = DefaultCell
			}
		}
		out[i] = Row{Program: r.Program, Values: values}
	}
	return out
}
