package models

// ExportResponse is returned by POST /api/channels/{channelID}/export.
type ExportResponse struct {
	Protected string `json:"protected"`
}

// ImportResponse is returned by POST /api/channels/{channelID}/import.
type ImportResponse struct {
	CSV string `json:"csv"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
