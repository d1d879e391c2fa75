package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// ActivityEventToResponse converts an ActivityEvent entity to ActivityEventResponse DTO
func ActivityEventToResponse(event *entity.ActivityEvent) *dto.ActivityEventResponse {
	if event == nil {
		return nil
	}

	return &dto.ActivityEventResponse{
		ID:        event.ID,
		Type:      event.Type,
		Message:   event.Message,
		CreatedAt: event.CreatedAt,
	}
}

// ActivityEventsToResponses converts a slice of ActivityEvent entities to slice of ActivityEventResponse DTOs
func ActivityEventsToResponses(events []entity.ActivityEvent) []dto.ActivityEventResponse {
	responses := make([]dto.ActivityEventResponse, len(events))
	for i := range events {
		responses[i] = *ActivityEventToResponse(&events[i])
	}
	return responses
}
