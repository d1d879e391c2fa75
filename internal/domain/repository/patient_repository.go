package repository

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
)

// PatientRepository loads and replaces the whole patient collection.
// Order is insertion order.
type PatientRepository interface {
	LoadAll(ctx context.Context) ([]entity.Patient, error)
	SaveAll(ctx context.Context, patients []entity.Patient) error
}
