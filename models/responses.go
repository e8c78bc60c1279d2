package models

// PurgeResponse is the body of a successful trash purge.
type PurgeResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// PingResponse is the body of a successful database ping.
type PingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of a failed maintenance call. Details is only
// set for unexpected failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AppInfo is the body of GET /api/info.
type AppInfo struct {
	Version        string `json:"version"`
	TrashRetention string `json:"trash_retention"`
	StartedAt      string `json:"started_at"`
	Uptime         string `json:"uptime"`
}
