package auth

// SessionData represents the authenticated session context for a request
type SessionData struct {
	WorkerID int64  `json:"worker_id"`
	Username string `json:"username"`
	Position string `json:"position"`
}
