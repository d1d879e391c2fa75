package repository

import (
	"time"

	"hospital-appointment-service/internal/domain/entity"

	"gorm.io/gorm"
)

// Row models keep a surrogate Seq key so LoadAll returns insertion order.

type patientRow struct {
	Seq           int64  `gorm:"primaryKey;autoIncrement"`
	PatientID     string `gorm:"type:varchar(32);not null;index"`
	Name          string `gorm:"type:varchar(255);not null"`
	ContactNumber string `gorm:"type:varchar(64)"`
	Age           int
	Gender        string `gorm:"type:varchar(32)"`
	Address       string `gorm:"type:text"`
}

func (patientRow) TableName() string {
	return "patients"
}

type doctorRow struct {
	Seq            int64  `gorm:"primaryKey;autoIncrement"`
	DoctorID       string `gorm:"type:varchar(32);not null;index"`
	Name           string `gorm:"type:varchar(255);not null"`
	ContactNumber  string `gorm:"type:varchar(64)"`
	Specialization string `gorm:"type:varchar(255)"`
	Department     string `gorm:"type:varchar(255)"`
}

func (doctorRow) TableName() string {
	return "doctors"
}

type appointmentRow struct {
	Seq           int64     `gorm:"primaryKey;autoIncrement"`
	AppointmentID string    `gorm:"type:varchar(32);not null;index"`
	PatientID     string    `gorm:"type:varchar(32);not null;index"`
	DoctorID      string    `gorm:"type:varchar(32);not null;index"`
	DateTime      time.Time `gorm:"not null"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(32);not null;index"`
}

func (appointmentRow) TableName() string {
	return "appointments"
}

type userRow struct {
	Seq      int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:varchar(255);not null;index"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(16);not null"`
	EntityID string `gorm:"type:varchar(32)"`
}

func (userRow) TableName() string {
	return "users"
}

// AutoMigrate creates or updates every table used by the gorm store.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&patientRow{},
		&doctorRow{},
		&appointmentRow{},
		&userRow{},
		&entity.ActivityEvent{},
	)
}

func toPatientRow(p entity.Patient) patientRow {
	return patientRow{
		PatientID:     p.ID,
		Name:          p.Name,
		ContactNumber: p.ContactNumber,
		Age:           p.Age,
		Gender:        p.Gender,
		Address:       p.Address,
	}
}

func (r patientRow) toEntity() entity.Patient {
	return entity.Patient{
		ID:            r.PatientID,
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Age:           r.Age,
		Gender:        r.Gender,
		Address:       r.Address,
	}
}

func toDoctorRow(d entity.Doctor) doctorRow {
	return doctorRow{
		DoctorID:       d.ID,
		Name:           d.Name,
		ContactNumber:  d.ContactNumber,
		Specialization: d.Specialization,
		Department:     d.Department,
	}
}

func (r doctorRow) toEntity() entity.Doctor {
	return entity.Doctor{
		ID:             r.DoctorID,
		Name:           r.Name,
		ContactNumber:  r.ContactNumber,
		Specialization: r.Specialization,
		Department:     r.Department,
	}
}

func toAppointmentRow(a *entity.Appointment) appointmentRow {
	return appointmentRow{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		DoctorID:      a.DoctorID,
		DateTime:      a.DateTime,
		Description:   a.Description,
		Status:        a.Status().String(),
	}
}

func (r appointmentRow) toEntity() (*entity.Appointment, error) {
	status, err := entity.ParseAppointmentStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return entity.RestoreAppointment(r.AppointmentID, r.PatientID, r.DoctorID, r.DateTime, r.Description, status)
}

func toUserRow(u entity.User) userRow {
	return userRow{
		Username: u.Username,
		Password: u.Password,
		Role:     u.Role.String(),
		EntityID: u.EntityID,
	}
}

func (r userRow) toEntity() (entity.User, error) {
	role, err := entity.ParseRole(r.Role)
	if err != nil {
		return entity.User{}, err
	}
	return entity.User{
		Username: r.Username,
		Password: r.Password,
		Role:     role,
		EntityID: r.EntityID,
	}, nil
}
