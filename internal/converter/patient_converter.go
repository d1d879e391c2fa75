package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            p.ID,
		Name:          p.Name,
		ContactNumber: p.ContactNumber,
		Age:           p.Age,
		Gender:        p.Gender,
		Address:       p.Address,
	}
}

// PatientsToListResponse converts a slice of Patient entities to PatientListResponse DTO
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}
