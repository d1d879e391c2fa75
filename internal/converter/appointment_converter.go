package converter

import (
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		DoctorID:    a.DoctorID,
		DateTime:    FormatDateTime(a.DateTime),
		Description: a.Description,
		Status:      a.Status().String(),
	}
}

// AppointmentsToListResponse converts a slice of Appointment entities to AppointmentListResponse DTO
func AppointmentsToListResponse(appointments []*entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if a == nil {
			continue
		}
		responses = append(responses, *AppointmentToResponse(a))
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}

// TransitionToResponse converts a state machine Transition to TransitionResponse DTO
func TransitionToResponse(t entity.Transition) *dto.TransitionResponse {
	return &dto.TransitionResponse{
		AppointmentID: t.AppointmentID,
		Action:        string(t.Action),
		OldStatus:     t.From.String(),
		NewStatus:     t.To.String(),
		Outcome:       t.Outcome.String(),
		Reason:        t.Reason,
	}
}
