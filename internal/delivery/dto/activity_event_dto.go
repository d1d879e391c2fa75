package dto

import "time"

// Response DTOs

type ActivityEventResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityEventListResponse struct {
	Events []ActivityEventResponse `json:"events"`
	Total  int                     `json:"total"`
}
