package response

import "venue-booking/internal/usecase/queries"

type LoginResponse struct {
	SessionID string          `json:"session_id"`
	Me        *queries.MeView `json:"me"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
