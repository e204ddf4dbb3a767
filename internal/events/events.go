package events

import "time"

type SessionCreatedEvent struct {
	SessionID  string    `json:"session_id"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
}

type ImportCompletedEvent struct {
	SessionID  string   `json:"session_id"`
	Categories []string `json:"categories"`
	Rows       int      `json:"rows"`
}

type SessionClosedEvent struct {
	SessionID  string  `json:"session_id"`
	Reason     string  `json:"reason"`
	AgeSeconds float64 `json:"age_seconds"`
}
