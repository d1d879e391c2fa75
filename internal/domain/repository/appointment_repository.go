package repository

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
)

type AppointmentRepository interface {
	LoadAll(ctx context.Context) ([]*entity.Appointment, error)
	SaveAll(ctx context.Context, appointments []*entity.Appointment) error
}
