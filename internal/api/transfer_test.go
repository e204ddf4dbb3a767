package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Shortlist/internal/events"
	"github.com/MikeSquared-Agency/Shortlist/internal/session"
)

// MockEvents implements events.Client for testing
type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockEvents) Close() {}

func setupTransferRouter(ev events.Client) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	m := session.NewManager(cfg, ev, logger)
	return NewRouter(m, ev, cfg, logger)
}

func TestImportCSV(t *testing.T) {
	mockEvents := &MockEvents{}
	mockEvents.On("Publish", mock.AnythingOfType("string"), mock.Anything).Return(nil)
	router := setupTransferRouter(mockEvents)
	view := createSession(t, router)

	csv := "Program,Case Volume,Mentorship,Final Score\nMercy General,4,5,9.9\nSt. Jude,2,,8.1\n"
	req := httptest.NewRequest("POST", "/api/v1/sessions/"+view.ID+"/import", bytes.NewBufferString(csv))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got SessionView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, []string{"Case Volume", "Mentorship"}, got.Categories,
		"Final Score must not survive as a category")
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Mercy General", got.Rows[0].Program)
	assert.Equal(t, "3", got.Rows[1].Values["Mentorship"], "empty cell defaults to 3")

	// The import publishes a lifecycle event for this session.
	mockEvents.AssertCalled(t, "Publish", events.SubjectSessionImported(view.ID), mock.Anything)
}

func TestImportMissingProgramColumn(t *testing.T) {
	router := setupTransferRouter(nil)
	view := createSession(t, router)

	csv := "Hospital,Case Volume\nMercy General,4\n"
	req := httptest.NewRequest("POST", "/api/v1/sessions/"+view.ID+"/import", bytes.NewBufferString(csv))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestImportMalformedCSV(t *testing.T) {
	router := setupTransferRouter(nil)
	view := createSession(t, router)

	csv := "Program,Notes\nMercy General,\"unterminated\n"
	req := httptest.NewRequest("POST", "/api/v1/sessions/"+view.ID+"/import", bytes.NewBufferString(csv))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportFailureKeepsSession(t *testing.T) {
	router := setupTransferRouter(nil)
	view := createSession(t, router)

	req := httptest.NewRequest("POST", "/api/v1/sessions/"+view.ID+"/import", bytes.NewBufferString("Name\nX\n"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/sessions/"+view.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var got SessionView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, view.Categories, got.Categories, "failed import must leave the schema alone")
	assert.Len(t, got.Rows, 1, "failed import must leave the rows alone")
}

func TestExportCSV(t *testing.T) {
	router := setupTransferRouter(nil)
	view := createSession(t, router)

	// Replace the seed data with one partially filled row.
	body := `[{"program":"Sparse","values":{"Reputation":5}}]`
	req := httptest.NewRequest("PUT", "/api/v1/sessions/"+view.ID+"/rows", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/sessions/"+view.ID+"/export", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="my_rankings.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Program,Reputation,Location,Schedule\nSparse,5,3,3\n", w.Body.String())
}

func TestImportExportRoundTrip(t *testing.T) {
	router := setupTransferRouter(nil)
	view := createSession(t, router)

	csv := "Program,Case Volume,Mentorship\nMercy General,4,5\nSt. Jude,2,3\n"
	req := httptest.NewRequest("POST", "/api/v1/sessions/"+view.ID+"/import", bytes.NewBufferString(csv))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/sessions/"+view.ID+"/export", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, csv, w.Body.String())
}
