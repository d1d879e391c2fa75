package handler

import (
	"encoding/json"
	"net/http"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
	"hospital-appointment-service/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	hospital  usecase.HospitalUsecase
	validator *validator.CustomValidator
}

func NewDoctorHandler(hospital usecase.HospitalUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		hospital:  hospital,
		validator: validator,
	}
}

func (h *DoctorHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reg, err := h.hospital.AddDoctor(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to add doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor added successfully",
		converter.DoctorRegistrationToResponse(&reg.Doctor, reg.Login))
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.hospital.ListDoctors(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", converter.DoctorsToListResponse(doctors))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.hospital.FindDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", converter.DoctorToResponse(doctor))
}

// GetDoctorAppointments accepts an optional ?status= filter
func (h *DoctorHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	var status *entity.AppointmentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := entity.ParseAppointmentStatus(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid status", nil)
			return
		}
		status = &parsed
	}

	appointments, err := h.hospital.ListDoctorAppointments(r.Context(), mux.Vars(r)["id"], status)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", converter.AppointmentsToListResponse(appointments))
}
