package entity

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentIDPrefix prefixes every generated appointment id
const AppointmentIDPrefix = "APP-"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPendingApproval  AppointmentStatus = "PENDING_APPROVAL"
	AppointmentStatusAccepted         AppointmentStatus = "ACCEPTED"
	AppointmentStatusRejected         AppointmentStatus = "REJECTED"
	AppointmentStatusCancelledByStaff AppointmentStatus = "CANCELLED_BY_STAFF"
	// AppointmentStatusCompleted is reserved; no transition leads to it.
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// AppointmentStatuses lists every status in declaration order
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPendingApproval,
	AppointmentStatusAccepted,
	AppointmentStatusRejected,
	AppointmentStatusCancelledByStaff,
	AppointmentStatusCompleted,
}

// ParseAppointmentStatus maps a status name (any case) to an AppointmentStatus.
func ParseAppointmentStatus(name string) (AppointmentStatus, error) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := stateFor(status); !ok {
		return "", fmt.Errorf("unknown appointment status %q", name)
	}
	return status, nil
}

// IsValid checks if the status is one of the declared statuses
func (s AppointmentStatus) IsValid() bool {
	_, ok := stateFor(s)
	return ok
}

// IsCancellable checks if staff may cancel an appointment in this status
func (s AppointmentStatus) IsCancellable() bool {
	return s == AppointmentStatusPendingApproval || s == AppointmentStatusAccepted
}

func (s AppointmentStatus) String() string {
	return string(s)
}

// Appointment is a request for a patient to see a doctor. Its status is held
// by an internal state value and only changes through Accept, Reject and Cancel.
type Appointment struct {
	ID          string
	PatientID   string
	DoctorID    string
	DateTime    time.Time
	Description string

	state appointmentState
}

// NewAppointment creates an appointment in PENDING_APPROVAL.
func NewAppointment(id, patientID, doctorID string, dateTime time.Time, description string) *Appointment {
	return &Appointment{
		ID:          id,
		PatientID:   patientID,
		DoctorID:    doctorID,
		DateTime:    dateTime,
		Description: description,
		state:       pendingApprovalState{},
	}
}

// RestoreAppointment rebuilds a persisted appointment in the given status.
func RestoreAppointment(id, patientID, doctorID string, dateTime time.Time, description string, status AppointmentStatus) (*Appointment, error) {
	state, ok := stateFor(status)
	if !ok {
		return nil, fmt.Errorf("unknown appointment status %q", status)
	}
	a := NewAppointment(id, patientID, doctorID, dateTime, description)
	a.state = state
	return a, nil
}

// Status returns the current status
func (a *Appointment) Status() AppointmentStatus {
	return a.currentState().status()
}

// Accept moves a pending appointment to ACCEPTED when actorDoctorID is the
// assigned doctor.
func (a *Appointment) Accept(actorDoctorID string) Transition {
	return a.currentState().accept(a, actorDoctorID)
}

// Reject moves a pending appointment to REJECTED when actorDoctorID is the
// assigned doctor.
func (a *Appointment) Reject(actorDoctorID string) Transition {
	return a.currentState().reject(a, actorDoctorID)
}

// Cancel moves a pending or accepted appointment to CANCELLED_BY_STAFF.
// The actor is recorded but not checked.
func (a *Appointment) Cancel(actorID string) Transition {
	return a.currentState().cancel(a, actorID)
}

// Clone returns an independent copy
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func (a *Appointment) currentState() appointmentState {
	if a.state == nil {
		return pendingApprovalState{}
	}
	return a.state
}

func (a *Appointment) String() string {
	return fmt.Sprintf("Appointment ID: %s, Patient ID: %s, Doctor ID: %s, DateTime: %s, Status: %s, Description: %s",
		a.ID, a.PatientID, a.DoctorID, a.DateTime.Format(DateTimeLayout), a.Status(), a.Description)
}

// DateTimeLayout is the ISO local date-time layout used in records and logs
const DateTimeLayout = "2006-01-02T15:04:05"
