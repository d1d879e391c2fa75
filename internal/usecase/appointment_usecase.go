package usecase

import (
	"context"
	"fmt"
	"strings"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

func (u *hospitalUsecase) ScheduleAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	user, err := u.authorize(ctx, "schedule appointment", entity.RoleStaff)
	if err != nil {
		return nil, err
	}

	dateTime, err := converter.ParseDateTime(req.DateTime)
	if err != nil {
		u.events.Record(entity.EventAppointmentScheduleFailed,
			fmt.Sprintf("Invalid date format %q by %s", req.DateTime, user.Username))
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, req.DateTime)
	}
	if err := checkRecordText("description", req.Description); err != nil {
		u.events.Record(entity.EventAppointmentScheduleFailed, fmt.Sprintf("%v, requested by %s", err, user.Username))
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.findPatient(req.PatientID); !ok {
		u.events.Record(entity.EventAppointmentScheduleFailed,
			fmt.Sprintf("Patient %s not found, requested by %s", req.PatientID, user.Username))
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, req.PatientID)
	}
	if _, ok := u.findDoctor(req.DoctorID); !ok {
		u.events.Record(entity.EventAppointmentScheduleFailed,
			fmt.Sprintf("Doctor %s not found, requested by %s", req.DoctorID, user.Username))
		return nil, fmt.Errorf("%w: %s", ErrDoctorNotFound, req.DoctorID)
	}

	appt := entity.NewAppointment(u.newID(entity.AppointmentIDPrefix), req.PatientID, req.DoctorID, dateTime, req.Description)
	u.appointments = append(u.appointments, appt)
	u.persistAppointments(ctx)

	u.events.Record(entity.EventAppointmentScheduledPending, fmt.Sprintf("%s by %s", appt, user.Username))
	return appt.Clone(), nil
}

func (u *hospitalUsecase) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	if _, err := u.authorize(ctx, "view all appointments", entity.RoleStaff); err != nil {
		return []*entity.Appointment{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return u.filterAppointments(func(*entity.Appointment) bool { return true }), nil
}

func (u *hospitalUsecase) ListPatientAppointments(ctx context.Context, patientID string) ([]*entity.Appointment, error) {
	if _, err := u.authorize(ctx, "view patient appointments"); err != nil {
		return []*entity.Appointment{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return u.filterAppointments(func(a *entity.Appointment) bool { return a.PatientID == patientID }), nil
}

// ListDoctorAppointments is open to staff and to the doctor linked to doctorID.
// A nil status returns every status.
func (u *hospitalUsecase) ListDoctorAppointments(ctx context.Context, doctorID string, status *entity.AppointmentStatus) ([]*entity.Appointment, error) {
	user, err := u.authorize(ctx, "view doctor appointments", entity.RoleStaff, entity.RoleDoctor)
	if err != nil {
		return []*entity.Appointment{}, err
	}
	if user.Role == entity.RoleDoctor && user.EntityID != doctorID {
		reason := fmt.Sprintf("linked to %s, requested %s", linkedID(user), doctorID)
		u.deny("view doctor appointments", user.Username, reason)
		return []*entity.Appointment{}, fmt.Errorf("%w: %s", entity.ErrUnauthorized, reason)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return u.filterAppointments(func(a *entity.Appointment) bool {
		return a.DoctorID == doctorID && (status == nil || a.Status() == *status)
	}), nil
}

func (u *hospitalUsecase) AcceptAppointment(ctx context.Context, appointmentID string) (entity.Transition, error) {
	return u.doctorTransition(ctx, appointmentID, entity.ActionAccept)
}

func (u *hospitalUsecase) RejectAppointment(ctx context.Context, appointmentID string) (entity.Transition, error) {
	return u.doctorTransition(ctx, appointmentID, entity.ActionReject)
}

// ProcessAppointmentAction dispatches a free-form "accept"/"reject" command.
func (u *hospitalUsecase) ProcessAppointmentAction(ctx context.Context, appointmentID, action string) (entity.Transition, error) {
	user, err := u.authorize(ctx, "process appointment action", entity.RoleDoctor)
	if err != nil {
		return entity.Transition{}, err
	}

	switch entity.TransitionAction(strings.ToUpper(strings.TrimSpace(action))) {
	case entity.ActionAccept:
		return u.applyDoctorTransition(ctx, user, appointmentID, entity.ActionAccept)
	case entity.ActionReject:
		return u.applyDoctorTransition(ctx, user, appointmentID, entity.ActionReject)
	}

	u.events.Record(entity.EventAppointmentActionDeclined,
		fmt.Sprintf("ID: %s, invalid action %q by Dr. %s", appointmentID, action, user.Username))
	return entity.Transition{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
}

func (u *hospitalUsecase) doctorTransition(ctx context.Context, appointmentID string, action entity.TransitionAction) (entity.Transition, error) {
	operation := strings.ToLower(string(action)) + " appointment"
	user, err := u.authorize(ctx, operation, entity.RoleDoctor)
	if err != nil {
		return entity.Transition{}, err
	}
	return u.applyDoctorTransition(ctx, user, appointmentID, action)
}

// applyDoctorTransition runs accept or reject for an authorized doctor. An
// appointment owned by another doctor is reported exactly like a missing one.
func (u *hospitalUsecase) applyDoctorTransition(ctx context.Context, user entity.User, appointmentID string, action entity.TransitionAction) (entity.Transition, error) {
	if !user.HasEntityID() {
		u.events.Record(entity.EventAppointmentActionDeclined,
			fmt.Sprintf("ID: %s, %s by Dr. %s: no linked doctor", appointmentID, action, user.Username))
		return entity.Transition{}, ErrDoctorNotLinked
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appt, ok := u.findAppointment(appointmentID)
	if !ok || appt.DoctorID != user.EntityID {
		u.events.Record(entity.EventAppointmentActionDeclined,
			fmt.Sprintf("ID: %s, %s by Dr. %s: appointment not found", appointmentID, action, user.Username))
		return entity.Transition{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID)
	}

	var t entity.Transition
	eventType := entity.EventAppointmentAccepted
	if action == entity.ActionReject {
		t = appt.Reject(user.EntityID)
		eventType = entity.EventAppointmentRejected
	} else {
		t = appt.Accept(user.EntityID)
	}

	if !t.Applied() {
		u.events.Record(entity.EventAppointmentActionDeclined,
			fmt.Sprintf("ID: %s, %s by Dr. %s: %s", t.AppointmentID, action, user.Username, t.Reason))
		return t, t.Err()
	}

	u.persistAppointments(ctx)
	u.events.Record(eventType,
		fmt.Sprintf("ID: %s, Old Status: %s, New Status: %s by Dr. %s", t.AppointmentID, t.From, t.To, user.Username))
	return t, nil
}

// CancelAppointment is the staff path; only pending or accepted appointments
// can be cancelled.
func (u *hospitalUsecase) CancelAppointment(ctx context.Context, appointmentID string) (entity.Transition, error) {
	user, err := u.authorize(ctx, "cancel appointment", entity.RoleStaff)
	if err != nil {
		return entity.Transition{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	appt, ok := u.findAppointment(appointmentID)
	if !ok {
		u.events.Record(entity.EventAppointmentActionDeclined,
			fmt.Sprintf("ID: %s, CANCEL by Staff %s: appointment not found", appointmentID, user.Username))
		return entity.Transition{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID)
	}

	t := appt.Cancel(user.Username)
	if !t.Applied() {
		u.events.Record(entity.EventAppointmentActionDeclined,
			fmt.Sprintf("ID: %s, CANCEL by Staff %s: %s", t.AppointmentID, user.Username, t.Reason))
		return t, fmt.Errorf("%w: %s", entity.ErrInvalidState, t.Reason)
	}

	u.persistAppointments(ctx)
	u.events.Record(entity.EventAppointmentCancelled,
		fmt.Sprintf("ID: %s, Old Status: %s, New Status: %s by Staff %s", t.AppointmentID, t.From, t.To, user.Username))
	return t, nil
}

// findAppointment expects u.mu to be held.
func (u *hospitalUsecase) findAppointment(appointmentID string) (*entity.Appointment, bool) {
	for _, a := range u.appointments {
		if a.ID == appointmentID {
			return a, true
		}
	}
	return nil, false
}

// filterAppointments returns clones; expects u.mu to be held.
func (u *hospitalUsecase) filterAppointments(keep func(*entity.Appointment) bool) []*entity.Appointment {
	result := make([]*entity.Appointment, 0)
	for _, a := range u.appointments {
		if keep(a) {
			result = append(result, a.Clone())
		}
	}
	return result
}

func linkedID(user entity.User) string {
	if user.HasEntityID() {
		return user.EntityID
	}
	return "no doctor"
}
