package usecase

import (
	"context"
	"fmt"

	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

// DoctorRegistration is the result of AddDoctor. Login is nil when the derived
// username was already taken and no user was provisioned.
type DoctorRegistration struct {
	Doctor entity.Doctor
	Login  *entity.User
}

func (u *hospitalUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*DoctorRegistration, error) {
	user, err := u.authorize(ctx, "add doctor", entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	if err := checkRecordText("name", req.Name, "contact number", req.ContactNumber,
		"specialization", req.Specialization, "department", req.Department); err != nil {
		u.events.Record(entity.EventDoctorAddFailed, fmt.Sprintf("%v, requested by %s", err, user.Username))
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doctor := entity.Doctor{
		ID:             u.newID(entity.DoctorIDPrefix),
		Name:           req.Name,
		ContactNumber:  req.ContactNumber,
		Specialization: req.Specialization,
		Department:     req.Department,
	}
	u.doctors = append(u.doctors, doctor)
	u.persistDoctors(ctx)

	reg := &DoctorRegistration{Doctor: doctor}
	username, password := entity.DoctorCredentials(doctor.Name, doctor.ID)
	loginNote := fmt.Sprintf("login user %s already exists, none created", username)
	if !u.usernameTaken(username) {
		login := entity.User{
			Username: username,
			Password: password,
			Role:     entity.RoleDoctor,
			EntityID: doctor.ID,
		}
		u.users = append(u.users, login)
		u.persistUsers(ctx)
		reg.Login = &login
		loginNote = fmt.Sprintf("login user %s created", username)
	}

	u.events.Record(entity.EventDoctorAdded, fmt.Sprintf("%s by %s; %s", doctor, user.Username, loginNote))
	return reg, nil
}

func (u *hospitalUsecase) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	if _, err := u.authorize(ctx, "view doctors"); err != nil {
		return []entity.Doctor{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doctors := make([]entity.Doctor, len(u.doctors))
	copy(doctors, u.doctors)
	return doctors, nil
}

func (u *hospitalUsecase) FindDoctor(ctx context.Context, doctorID string) (*entity.Doctor, error) {
	if _, err := u.authorize(ctx, "find doctor"); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if d, ok := u.findDoctor(doctorID); ok {
		return &d, nil
	}
	return nil, ErrDoctorNotFound
}

// findDoctor expects u.mu to be held.
func (u *hospitalUsecase) findDoctor(doctorID string) (entity.Doctor, bool) {
	for _, d := range u.doctors {
		if d.ID == doctorID {
			return d, true
		}
	}
	return entity.Doctor{}, false
}

func (u *hospitalUsecase) usernameTaken(username string) bool {
	for _, existing := range u.users {
		if existing.Username == username {
			return true
		}
	}
	return false
}
