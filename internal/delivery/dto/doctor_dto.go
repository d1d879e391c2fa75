package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,max=255,recordfield"`
	ContactNumber  string `json:"contact_number" validate:"required,max=64,recordfield"`
	Specialization string `json:"specialization" validate:"required,max=255,recordfield"`
	Department     string `json:"department" validate:"required,max=255,recordfield"`
}

// Response DTOs

type DoctorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ContactNumber  string `json:"contact_number"`
	Specialization string `json:"specialization"`
	Department     string `json:"department"`
}

// DoctorRegistrationResponse carries the provisioned login when one was created.
type DoctorRegistrationResponse struct {
	Doctor        DoctorResponse `json:"doctor"`
	LoginUsername string         `json:"login_username,omitempty"`
	LoginPassword string         `json:"login_password,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
