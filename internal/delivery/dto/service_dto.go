package dto

import "github.com/google/uuid"

type ServiceSummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AvailableServiceResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slots []string  `json:"slots"`
}
