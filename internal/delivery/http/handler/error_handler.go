package handler

import (
	"errors"
	"net/http"

	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"
)

// writeUsecaseError maps a usecase error onto a status code. Anything it does
// not recognise becomes a 500 with fallback as the message.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrNoSession):
		response.Unauthorized(w, "No active session")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid username or password")
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, entity.ErrUnauthorized):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrActivityNotFound):
		response.NotFound(w, "Activity event not found")
	case errors.Is(err, entity.ErrInvalidReference):
		response.NotFound(w, err.Error())
	case errors.Is(err, entity.ErrInvalidState), errors.Is(err, entity.ErrAlreadyInState):
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrInvalidAction),
		errors.Is(err, usecase.ErrInvalidFieldValue):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
