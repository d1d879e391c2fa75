package dto

// Request DTOs

type CreatePatientRequest struct {
	Name          string `json:"name" validate:"required,max=255,recordfield"`
	ContactNumber string `json:"contact_number" validate:"required,max=64,recordfield"`
	Age           int    `json:"age" validate:"gte=0,lte=150"`
	Gender        string `json:"gender" validate:"required,max=32,recordfield"`
	Address       string `json:"address" validate:"required,max=255,recordfield"`
}

// Response DTOs

type PatientResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
