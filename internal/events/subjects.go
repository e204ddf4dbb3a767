package events

const (
	StreamName   = "SHORTLIST_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectSessionCreated(sessionID string) string  { return "shortlist.session." + sessionID + ".created" }
func SubjectSessionImported(sessionID string) string { return "shortlist.session." + sessionID + ".imported" }
func SubjectSessionClosed(sessionID string) string   { return "shortlist.session." + sessionID + ".closed" }
func SubjectSessionExpired(sessionID string) string  { return "shortlist.session." + sessionID + ".expired" }
