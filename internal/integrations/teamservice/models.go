package teamservice

// Team is the crew record exposed by the staffing service.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"` // montagem, pos_montagem, assistencia
	Active bool   `json:"active"`
}

// ErrorResponse is the staffing service error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
