package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(d *entity.Doctor) *dto.DoctorResponse {
	if d == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		ContactNumber:  d.ContactNumber,
		Specialization: d.Specialization,
		Department:     d.Department,
	}
}

// DoctorsToListResponse converts a slice of Doctor entities to DoctorListResponse DTO
func DoctorsToListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}

// DoctorRegistrationToResponse includes the derived login only when a user was provisioned
func DoctorRegistrationToResponse(d *entity.Doctor, login *entity.User) *dto.DoctorRegistrationResponse {
	if d == nil {
		return nil
	}

	resp := &dto.DoctorRegistrationResponse{
		Doctor: *DoctorToResponse(d),
	}
	if login != nil {
		resp.LoginUsername = login.Username
		resp.LoginPassword = login.Password
	}
	return resp
}
