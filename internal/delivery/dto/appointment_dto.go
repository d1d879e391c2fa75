package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" validate:"required,recordfield"`
	DoctorID    string `json:"doctor_id" validate:"required,recordfield"`
	DateTime    string `json:"date_time" validate:"required,recordfield"` // Format: YYYY-MM-DDTHH:MM[:SS]
	Description string `json:"description" validate:"max=1000,recordfield"`
}

type AppointmentActionRequest struct {
	Action string `json:"action" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	DoctorID    string `json:"doctor_id"`
	DateTime    string `json:"date_time"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type TransitionResponse struct {
	AppointmentID string `json:"appointment_id"`
	Action        string `json:"action"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	Outcome       string `json:"outcome"`
	Reason        string `json:"reason"`
}
