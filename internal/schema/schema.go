package schema

// Reserved column names: part of every table's shape but never categories.
const (
	ProgramColumn    = "Program"
	FinalScoreColumn = "Final Score"
)

// Schema is the ordered, duplicate-free list of active category names.
// Order is significant: it controls table column order and comparison-axis
// order.
type Schema struct {
	categories []string
}

// New builds a Schema from names, dropping empty, reserved, and duplicate
// entries while preserving first-occurrence order.
func New(names []string) *Schema {
	s := &Schema{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Categories returns a copy of the active category names in order.
func (s *Schema) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Len reports the number of active categories.
func (s *Schema) Len() int { return len(s.categories) }

// Has reports whether name is an active category.
func (s *Schema) Has(name string) bool {
	for _, c := range s.categories {
		if c == name {
			return true
		}
	}
	return false
}

// Add appends name to the schema and reports whether the schema changed.
// Empty, reserved, and already-present names are silent no-ops.
func (s *Schema) Add(name string) bool {
	if name == "" || reserved(name) || s.Has(name) {
		return false
	}
	s.categories = append(s.categories, name)
	return true
}

// Remove deletes every name in names, preserving the relative order of
// survivors. Names not present are ignored. Returns the names actually
// removed, in schema order.
func (s *Schema) Remove(names []string) []string {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	var kept, removed []string
	for _, c := range s.categories {
		if drop[c] {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	return removed
}

// SyncFromImport replaces the schema wholesale with columns, minus the
// reserved names, in the order they appear in the import. Prior categories
// not present in columns are discarded, not merged.
func (s *Schema) SyncFromImport(columns []string) {
	s.categories = nil
	for _, c := range columns {
		s.Add(c)
	}
}

func reserved(name string) bool {
	return name == ProgramColumn || name == FinalScoreColumn
}
