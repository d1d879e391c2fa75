package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-appointment-service/internal/domain/entity"
)

type memoryActivityRepo struct {
	events []entity.ActivityEvent
	err    error
}

func (m *memoryActivityRepo) Create(_ context.Context, event *entity.ActivityEvent) error {
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, *event)
	return nil
}

func (m *memoryActivityRepo) FindAll(context.Context) ([]entity.ActivityEvent, error) {
	return m.events, m.err
}

func (m *memoryActivityRepo) FindByType(_ context.Context, eventType string) ([]entity.ActivityEvent, error) {
	var out []entity.ActivityEvent
	for _, e := range m.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out, m.err
}

func (m *memoryActivityRepo) FindByID(_ context.Context, id int64) (*entity.ActivityEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.events {
		if m.events[i].ID == id {
			return &m.events[i], nil
		}
	}
	return nil, nil
}

func TestActivityEventUsecase(t *testing.T) {
	ctx := context.Background()
	repo := &memoryActivityRepo{}
	for _, typ := range []string{entity.EventLoginSuccess, entity.EventLogout, entity.EventLoginSuccess} {
		repo.Create(ctx, &entity.ActivityEvent{Type: typ, Message: "User: staff"})
	}
	u := NewActivityEventUsecase(quietLogger(), repo)

	all, err := u.GetActivityEvents(ctx, "")
	if err != nil || all.Total != 3 {
		t.Fatalf("all = %+v, %v", all, err)
	}

	logins, err := u.GetActivityEvents(ctx, entity.EventLoginSuccess)
	if err != nil || logins.Total != 2 || len(logins.Events) != 2 {
		t.Fatalf("logins = %+v, %v", logins, err)
	}

	ev, err := u.GetActivityEvent(ctx, 2)
	if err != nil || ev.Type != entity.EventLogout {
		t.Fatalf("event = %+v, %v", ev, err)
	}
	if _, err := u.GetActivityEvent(ctx, 99); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("missing err = %v", err)
	}

	repo.err = errors.New("db down")
	if _, err := u.GetActivityEvents(ctx, ""); err == nil {
		t.Fatal("expected repository error")
	}
}
