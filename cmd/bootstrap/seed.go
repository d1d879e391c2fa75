package bootstrap

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
	domainRepo "hospital-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func defaultUsers() []entity.User {
	return []entity.User{
		{Username: "staff", Password: "staff123", Role: entity.RoleStaff},
		{Username: "doctor1", Password: "doc123", Role: entity.RoleDoctor, EntityID: "DOC-SAMPLE1"},
		{Username: "doctor2", Password: "doc456", Role: entity.RoleDoctor, EntityID: "DOC-SAMPLE2"},
	}
}

// seedDefaultUsers writes the default accounts only when no user exists yet.
func seedDefaultUsers(ctx context.Context, store *domainRepo.EntityStore, log *logrus.Logger) error {
	users, err := store.Users.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	if err := store.Users.SaveAll(ctx, defaultUsers()); err != nil {
		return err
	}
	log.Info("Seeded default users")
	return nil
}
