package handler

import (
	"encoding/json"
	"net/http"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
	"hospital-appointment-service/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	hospital  usecase.HospitalUsecase
	validator *validator.CustomValidator
}

func NewPatientHandler(hospital usecase.HospitalUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		hospital:  hospital,
		validator: validator,
	}
}

func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.hospital.RegisterPatient(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to register patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", converter.PatientToResponse(patient))
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.hospital.ListPatients(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", converter.PatientsToListResponse(patients))
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.hospital.FindPatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeUsecaseError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", converter.PatientToResponse(patient))
}

func (h *PatientHandler) GetPatientAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.hospital.ListPatientAppointments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeUsecaseError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", converter.AppointmentsToListResponse(appointments))
}
