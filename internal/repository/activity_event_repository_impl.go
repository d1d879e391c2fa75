package repository

import (
	"context"
	"errors"

	"hospital-appointment-service/internal/domain/entity"
	domainRepo "hospital-appointment-service/internal/domain/repository"

	"gorm.io/gorm"
)

type activityEventRepository struct {
	db *gorm.DB
}

func NewActivityEventRepository(db *gorm.DB) domainRepo.ActivityEventRepository {
	return &activityEventRepository{db: db}
}

func (r *activityEventRepository) Create(ctx context.Context, event *entity.ActivityEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *activityEventRepository) FindAll(ctx context.Context) ([]entity.ActivityEvent, error) {
	var events []entity.ActivityEvent
	err := r.db.WithContext(ctx).Order("id").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *activityEventRepository) FindByType(ctx context.Context, eventType string) ([]entity.ActivityEvent, error) {
	var events []entity.ActivityEvent
	err := r.db.WithContext(ctx).Where("type = ?", eventType).Order("id").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *activityEventRepository) FindByID(ctx context.Context, id int64) (*entity.ActivityEvent, error) {
	var event entity.ActivityEvent
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}
