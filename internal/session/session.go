package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Shortlist/internal/compare"
	"github.com/MikeSquared-Agency/Shortlist/internal/csvio"
	"github.com/MikeSquared-Agency/Shortlist/internal/schema"
	"github.com/MikeSquared-Agency/Shortlist/internal/scoring"
	"github.com/MikeSquared-Agency/Shortlist/internal/table"
)

// Session is one user's working state: the category schema plus the raw
// score table. Every method takes the session lock, so a session is safe to
// share across request handlers; methods that represent user activity also
// refresh the idle clock.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	schema   *schema.Schema
	table    *table.Table
	lastUsed time.Time
}

func newSession(categories []string, exampleProgram string) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		schema:    schema.New(categories),
		table:     table.New(),
		lastUsed:  now,
	}
	if exampleProgram != "" {
		values := make(map[string]string, s.schema.Len())
		for _, c := range s.schema.Categories() {
			values[c] = table.DefaultCell
		}
		s.table.Append(table.Row{Program: exampleProgram, Values: values})
	}
	return s
}

// lastUsed is only ever read under the lock; touch is called by every
// user-driven method.
func (s *Session) touch() { s.lastUsed = time.Now() }

func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Counts reports rows and categories without refreshing the idle clock, so
// stats polling cannot keep a session alive.
func (s *Session) Counts() (rows, categories int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Len(), s.schema.Len()
}

func (s *Session) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.schema.Categories()
}

func (s *Session) Rows() []table.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.table.Rows()
}

// AddCategory appends a category and materializes its column on every
// existing row. Reserved, empty, and duplicate names report false, state
// unchanged.
func (s *Session) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if !s.schema.Add(name) {
		return false
	}
	s.table.AddColumn(name)
	return true
}

// RemoveCategories drops the named categories from the schema and their
// columns from the table, returning what was actually removed.
func (s *Session) RemoveCategories(names []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	removed := s.schema.Remove(names)
	s.table.DropColumns(removed)
	return removed
}

func (s *Session) AppendRow(row table.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.table.Append(row)
}

func (s *Session) UpdateRow(i int, row table.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.table.Update(i, row)
}

func (s *Session) DeleteRow(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.table.Delete(i)
}

func (s *Session) ReplaceRows(rows []table.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.table.Replace(rows)
}

// ImportCSV replaces the schema and table wholesale from an uploaded file.
// On any parse error the session keeps its previous state. Returns the new
// categories and row count.
func (s *Session) ImportCSV(data []byte) ([]string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	categories, rows, err := csvio.Import(data)
	if err != nil {
		return nil, 0, err
	}
	s.schema.SyncFromImport(categories)
	s.table.Replace(rows)
	return s.schema.Categories(), len(rows), nil
}

// ExportCSV serializes the normalized table: Program plus the schema columns
// in order, defaults filled in, no derived scores.
func (s *Session) ExportCSV() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	cats := s.schema.Categories()
	return csvio.Export(s.table.Normalized(cats), cats)
}

// Rank scores a normalized snapshot of the table under weights. The stored
// table is never mutated, so ranking with any weights is repeatable.
func (s *Session) Rank(weights scoring.Weights) scoring.RankingResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	return scoring.Compute(s.table.Normalized(s.schema.Categories()), weights)
}

// Compare ranks the table under weights and extracts closed rating vectors
// for the selected programs, axes in schema order.
func (s *Session) Compare(weights scoring.Weights, programs []string) ([]string, map[string][]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	cats := s.schema.Categories()
	result := scoring.Compute(s.table.Normalized(cats), weights)
	return compare.ClosedAxes(cats), compare.BuildVectors(result, cats, programs)
}
