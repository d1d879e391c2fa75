package service

import (
	"context"
	"time"

	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const auditWriteTimeout = 5 * time.Second

// AuditService persists every event to the activity_events table.
type AuditService interface {
	EventSink
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.ActivityEventRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.ActivityEventRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(eventType, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()

	event := &entity.ActivityEvent{
		Type:    eventType,
		Message: message,
	}
	if err := s.auditRepo.Create(ctx, event); err != nil {
		s.log.Warnf("Failed to create activity event: %+v", err)
	}
}
