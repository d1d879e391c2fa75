package usecase

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ActivityEventUsecase interface {
	GetActivityEvents(ctx context.Context, eventType string) (*dto.ActivityEventListResponse, error)
	GetActivityEvent(ctx context.Context, id int64) (*dto.ActivityEventResponse, error)
}

type activityEventUsecase struct {
	log       *logrus.Logger
	eventRepo repository.ActivityEventRepository
}

func NewActivityEventUsecase(
	log *logrus.Logger,
	eventRepo repository.ActivityEventRepository,
) ActivityEventUsecase {
	return &activityEventUsecase{
		log:       log,
		eventRepo: eventRepo,
	}
}

// GetActivityEvents lists every recorded event, or only those of eventType when set.
func (u *activityEventUsecase) GetActivityEvents(ctx context.Context, eventType string) (*dto.ActivityEventListResponse, error) {
	var (
		events []entity.ActivityEvent
		err    error
	)
	if eventType == "" {
		events, err = u.eventRepo.FindAll(ctx)
	} else {
		events, err = u.eventRepo.FindByType(ctx, eventType)
	}
	if err != nil {
		u.log.Warnf("Failed to find activity events: %+v", err)
		return nil, err
	}

	return &dto.ActivityEventListResponse{
		Events: converter.ActivityEventsToResponses(events),
		Total:  len(events),
	}, nil
}

func (u *activityEventUsecase) GetActivityEvent(ctx context.Context, id int64) (*dto.ActivityEventResponse, error) {
	event, err := u.eventRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find activity event: %+v", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrActivityNotFound
	}

	return converter.ActivityEventToResponse(event), nil
}
