package usecase

import (
	"context"
	"fmt"

	"hospital-appointment-service/internal/delivery/http/middleware"
	"hospital-appointment-service/internal/domain/entity"
)

// authenticate returns the first user whose username and password both match exactly.
func authenticate(users []entity.User, username, password string) (entity.User, bool) {
	for _, user := range users {
		if user.Matches(username, password) {
			return user, true
		}
	}
	return entity.User{}, false
}

// Login checks the credentials and, when ctx carries a session, installs the
// user into it. A failed login leaves the session untouched.
func (u *hospitalUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u.mu.Lock()
	user, ok := authenticate(u.users, username, password)
	u.mu.Unlock()

	if !ok {
		u.events.Record(entity.EventLoginFailure, fmt.Sprintf("User: %s", username))
		return nil, ErrInvalidCredentials
	}

	if sess, found := middleware.GetSessionFromContext(ctx); found {
		sess.Install(user)
	}
	u.events.Record(entity.EventLoginSuccess, fmt.Sprintf("User: %s", username))
	return &user, nil
}

// Logout clears the session in ctx; no-op when nobody is logged in.
func (u *hospitalUsecase) Logout(ctx context.Context) {
	sess, _ := middleware.GetSessionFromContext(ctx)
	user, ok := sess.User()
	if !ok {
		return
	}
	sess.Clear()
	u.events.Record(entity.EventLogout, fmt.Sprintf("User: %s", user.Username))
}

func (u *hospitalUsecase) CurrentUser(ctx context.Context) (*entity.User, error) {
	sess, _ := middleware.GetSessionFromContext(ctx)
	user, ok := sess.User()
	if !ok {
		return nil, ErrNoSession
	}
	return &user, nil
}
