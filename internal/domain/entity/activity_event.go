package entity

import "time"

// ActivityEvent is one audit trail entry emitted by an operation
type ActivityEvent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"type:varchar(64);not null;index" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}

// Event types
const (
	EventLoginSuccess                = "LOGIN_SUCCESS"
	EventLoginFailure                = "LOGIN_FAILURE"
	EventLogout                      = "LOGOUT"
	EventAccessDenied                = "ACCESS_DENIED"
	EventPatientRegistered           = "PATIENT_REGISTERED"
	EventPatientRegisterFailed       = "PATIENT_REGISTER_FAILED"
	EventDoctorAdded                 = "DOCTOR_ADDED"
	EventDoctorAddFailed             = "DOCTOR_ADD_FAILED"
	EventAppointmentScheduledPending = "APPOINTMENT_SCHEDULED_PENDING"
	EventAppointmentScheduleFailed   = "APPOINTMENT_SCHEDULE_FAILED"
	EventAppointmentAccepted         = "APPOINTMENT_ACCEPTED"
	EventAppointmentRejected         = "APPOINTMENT_REJECTED"
	EventAppointmentCancelled        = "APPOINTMENT_CANCELLED"
	EventAppointmentActionDeclined   = "APPOINTMENT_ACTION_DECLINED"
)
