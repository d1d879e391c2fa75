package repository

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
)

type UserRepository interface {
	LoadAll(ctx context.Context) ([]entity.User, error)
	SaveAll(ctx context.Context, users []entity.User) error
}
