package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password is never included.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		Username: user.Username,
		Role:     user.Role.String(),
	}
	if user.HasEntityID() {
		response.EntityID = user.EntityID
	}
	return response
}
