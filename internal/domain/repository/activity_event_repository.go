package repository

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
)

type ActivityEventRepository interface {
	Create(ctx context.Context, event *entity.ActivityEvent) error
	FindAll(ctx context.Context) ([]entity.ActivityEvent, error)
	FindByType(ctx context.Context, eventType string) ([]entity.ActivityEvent, error)
	FindByID(ctx context.Context, id int64) (*entity.ActivityEvent, error)
}
