package usecase

import (
	"errors"
	"fmt"

	"hospital-appointment-service/internal/domain/entity"
)

var (
	ErrNoSession           = fmt.Errorf("%w: no active session", entity.ErrUnauthorized)
	ErrDoctorNotLinked     = fmt.Errorf("%w: doctor account is not linked to a doctor record", entity.ErrUnauthorized)
	ErrPatientNotFound     = fmt.Errorf("%w: patient not found", entity.ErrInvalidReference)
	ErrDoctorNotFound      = fmt.Errorf("%w: doctor not found", entity.ErrInvalidReference)
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment not found", entity.ErrInvalidReference)
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidAction       = errors.New("invalid appointment action, use ACCEPT or REJECT")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DDTHH:MM[:SS]")
	ErrInvalidFieldValue   = errors.New("text fields must not contain commas or line breaks")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrActivityNotFound    = errors.New("activity event not found")
)
