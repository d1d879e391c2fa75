package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/delivery/http/middleware"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/domain/repository"
	"hospital-appointment-service/internal/service"

	"github.com/sirupsen/logrus"
)

// HospitalUsecase is the single entry point for patient, doctor and appointment
// operations. Every method reads the caller's session from ctx and checks its
// role before touching data.
type HospitalUsecase interface {
	Login(ctx context.Context, username, password string) (*entity.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*entity.User, error)

	RegisterPatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error)
	ListPatients(ctx context.Context) ([]entity.Patient, error)
	FindPatient(ctx context.Context, patientID string) (*entity.Patient, error)

	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*DoctorRegistration, error)
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	FindDoctor(ctx context.Context, doctorID string) (*entity.Doctor, error)

	ScheduleAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)
	ListPatientAppointments(ctx context.Context, patientID string) ([]*entity.Appointment, error)
	ListDoctorAppointments(ctx context.Context, doctorID string, status *entity.AppointmentStatus) ([]*entity.Appointment, error)
	AcceptAppointment(ctx context.Context, appointmentID string) (entity.Transition, error)
	RejectAppointment(ctx context.Context, appointmentID string) (entity.Transition, error)
	ProcessAppointmentAction(ctx context.Context, appointmentID, action string) (entity.Transition, error)
	CancelAppointment(ctx context.Context, appointmentID string) (entity.Transition, error)

	// AppointmentStatusCounts is for metrics; it bypasses session checks.
	AppointmentStatusCounts() map[entity.AppointmentStatus]int
}

type hospitalUsecase struct {
	log    *logrus.Logger
	store  *repository.EntityStore
	events service.EventSink
	newID  func(prefix string) string

	// mu guards the collections below; a check, transition and persist
	// for one call all happen under it.
	mu           sync.Mutex
	patients     []entity.Patient
	doctors      []entity.Doctor
	appointments []*entity.Appointment
	users        []entity.User
}

// NewHospitalUsecase loads every collection from store.
func NewHospitalUsecase(
	ctx context.Context,
	log *logrus.Logger,
	store *repository.EntityStore,
	events service.EventSink,
) (HospitalUsecase, error) {
	if events == nil {
		events = service.NopEventSink{}
	}
	u := &hospitalUsecase{
		log:    log,
		store:  store,
		events: events,
		newID:  entity.NewID,
	}

	var err error
	if u.patients, err = store.Patients.LoadAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	if u.doctors, err = store.Doctors.LoadAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to load doctors: %w", err)
	}
	if u.appointments, err = store.Appointments.LoadAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	if u.users, err = store.Users.LoadAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	log.Infof("Loaded %d patients, %d doctors, %d appointments, %d users",
		len(u.patients), len(u.doctors), len(u.appointments), len(u.users))

	return u, nil
}

// authorize returns the session user when it holds one of roles (any role
// when none are given). Denials are recorded as ACCESS_DENIED.
func (u *hospitalUsecase) authorize(ctx context.Context, operation string, roles ...entity.Role) (entity.User, error) {
	sess, _ := middleware.GetSessionFromContext(ctx)
	user, ok := sess.User()
	if !ok {
		u.deny(operation, "anonymous", "no active session")
		return entity.User{}, ErrNoSession
	}
	if len(roles) == 0 {
		return user, nil
	}
	for _, r := range roles {
		if user.Role == r {
			return user, nil
		}
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	reason := fmt.Sprintf("requires role %s, has %s", strings.Join(names, " or "), user.Role)
	u.deny(operation, user.Username, reason)
	return entity.User{}, fmt.Errorf("%w: %s %s", entity.ErrUnauthorized, operation, reason)
}

func (u *hospitalUsecase) deny(operation, actor, reason string) {
	u.events.Record(entity.EventAccessDenied, fmt.Sprintf("%s denied for %s: %s", operation, actor, reason))
}

// checkRecordText rejects name/value pairs that could not be stored as a record field.
func checkRecordText(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := converter.CheckRecordField(pairs[i], pairs[i+1]); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFieldValue, pairs[i])
		}
	}
	return nil
}

// persistCtx detaches persistence from request cancellation.
func persistCtx(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// Persistence failures are logged; the in-memory change stands.

func (u *hospitalUsecase) persistPatients(ctx context.Context) {
	if err := u.store.Patients.SaveAll(persistCtx(ctx), u.patients); err != nil {
		u.log.Warnf("Failed to persist patients: %+v", err)
	}
}

func (u *hospitalUsecase) persistDoctors(ctx context.Context) {
	if err := u.store.Doctors.SaveAll(persistCtx(ctx), u.doctors); err != nil {
		u.log.Warnf("Failed to persist doctors: %+v", err)
	}
}

func (u *hospitalUsecase) persistAppointments(ctx context.Context) {
	if err := u.store.Appointments.SaveAll(persistCtx(ctx), u.appointments); err != nil {
		u.log.Warnf("Failed to persist appointments: %+v", err)
	}
}

func (u *hospitalUsecase) persistUsers(ctx context.Context) {
	if err := u.store.Users.SaveAll(persistCtx(ctx), u.users); err != nil {
		u.log.Warnf("Failed to persist users: %+v", err)
	}
}

func (u *hospitalUsecase) AppointmentStatusCounts() map[entity.AppointmentStatus]int {
	u.mu.Lock()
	defer u.mu.Unlock()

	counts := make(map[entity.AppointmentStatus]int, len(entity.AppointmentStatuses))
	for _, a := range u.appointments {
		counts[a.Status()]++
	}
	return counts
}
