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

type AppointmentHandler struct {
	hospital  usecase.HospitalUsecase
	validator *validator.CustomValidator
}

func NewAppointmentHandler(hospital usecase.HospitalUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		hospital:  hospital,
		validator: validator,
	}
}

func (h *AppointmentHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appt, err := h.hospital.ScheduleAppointment(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to schedule appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled, pending doctor approval", converter.AppointmentToResponse(appt))
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.hospital.ListAppointments(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", converter.AppointmentsToListResponse(appointments))
}

func (h *AppointmentHandler) AcceptAppointment(w http.ResponseWriter, r *http.Request) {
	t, err := h.hospital.AcceptAppointment(r.Context(), mux.Vars(r)["id"])
	h.writeTransition(w, t, err, "Appointment accepted")
}

func (h *AppointmentHandler) RejectAppointment(w http.ResponseWriter, r *http.Request) {
	t, err := h.hospital.RejectAppointment(r.Context(), mux.Vars(r)["id"])
	h.writeTransition(w, t, err, "Appointment rejected")
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	t, err := h.hospital.CancelAppointment(r.Context(), mux.Vars(r)["id"])
	h.writeTransition(w, t, err, "Appointment cancelled")
}

func (h *AppointmentHandler) ProcessAction(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	t, err := h.hospital.ProcessAppointmentAction(r.Context(), mux.Vars(r)["id"], req.Action)
	h.writeTransition(w, t, err, "Appointment action processed")
}

// writeTransition includes the declined transition in the error body when
// the state machine was reached.
func (h *AppointmentHandler) writeTransition(w http.ResponseWriter, t entity.Transition, err error, message string) {
	if err != nil {
		if t.AppointmentID != "" && !t.Applied() {
			response.Error(w, transitionStatus(t), err.Error(), converter.TransitionToResponse(t))
			return
		}
		writeUsecaseError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, message, converter.TransitionToResponse(t))
}

func transitionStatus(t entity.Transition) int {
	if t.Outcome == entity.OutcomeUnauthorized {
		return http.StatusForbidden
	}
	return http.StatusConflict
}
