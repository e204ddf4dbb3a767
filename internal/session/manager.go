package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Shortlist/internal/config"
	"github.com/MikeSquared-Agency/Shortlist/internal/events"
)

// ErrTooManySessions rejects Create when the active-session cap is reached.
var ErrTooManySessions = errors.New("session limit reached")

// Manager owns the in-memory session registry and the background reaper
// that expires idle sessions.
type Manager struct {
	cfg    *config.Config
	events events.Client
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewManager(cfg *config.Config, ev events.Client, logger *slog.Logger) *Manager {
	return &Manager{
		cfg:      cfg,
		events:   ev,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
		stopCh:   make(chan struct{}),
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.reapLoop(ctx)
}

func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
}

// Create registers a new session seeded with the configured default
// categories and example row.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	if len(m.sessions) >= m.cfg.Session.MaxSessions {
		m.mu.Unlock()
		return nil, ErrTooManySessions
	}
	s := newSession(m.cfg.Session.DefaultCategories, m.cfg.Session.ExampleProgram)
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info("session created", "session_id", s.ID)
	if m.events != nil {
		_ = m.events.Publish(events.SubjectSessionCreated(s.ID.String()), events.SessionCreatedEvent{
			SessionID:  s.ID.String(),
			Categories: s.Categories(),
			CreatedAt:  s.CreatedAt,
		})
	}
	return s, nil
}

func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Delete(id uuid.UUID) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}

	m.logger.Info("session closed", "session_id", id)
	if m.events != nil {
		_ = m.events.Publish(events.SubjectSessionClosed(id.String()), events.SessionClosedEvent{
			SessionID:  id.String(),
			Reason:     "closed",
			AgeSeconds: time.Since(s.CreatedAt).Seconds(),
		})
	}
	return true
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

type Stats struct {
	ActiveSessions  int `json:"active_sessions"`
	TotalRows       int `json:"total_rows"`
	TotalCategories int `json:"total_categories"`
}

func (m *Manager) Stats() Stats {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	st := Stats{ActiveSessions: len(sessions)}
	for _, s := range sessions {
		rows, cats := s.Counts()
		st.TotalRows += rows
		st.TotalCategories += cats
	}
	return st
}

func (m *Manager) reapLoop(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.cfg.ReapInterval())
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.reapIdle()
		}
	}
}

func (m *Manager) reapIdle() {
	cutoff := time.Now().Add(-m.cfg.IdleTimeout())

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.LastUsed().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		m.logger.Info("session expired", "session_id", s.ID, "idle_timeout", m.cfg.IdleTimeout())
		if m.events != nil {
			_ = m.events.Publish(events.SubjectSessionExpired(s.ID.String()), events.SessionClosedEvent{
				SessionID:  s.ID.String(),
				Reason:     "expired",
				AgeSeconds: time.Since(s.CreatedAt).Seconds(),
			})
		}
	}
}
