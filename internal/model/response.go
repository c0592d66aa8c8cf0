package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *Meta     `json:"meta,omitempty"`
}

type APIError struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Details  string   `json:"details,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds pagination metadata for a listing of total rows.
func NewMeta(page Page, total int) *Meta {
	if !page.Enabled() {
		return nil
	}

	totalPages := 0
	if total > 0 && page.Size > 0 {
		totalPages = (total + page.Size - 1) / page.Size
	}

	return &Meta{Page: page.Number, Limit: page.Size, Total: total, TotalPages: totalPages}
}

type HomeInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}
