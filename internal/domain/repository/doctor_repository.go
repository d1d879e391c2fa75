package repository

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
)

type DoctorRepository interface {
	LoadAll(ctx context.Context) ([]entity.Doctor, error)
	SaveAll(ctx context.Context, doctors []entity.Doctor) error
}
