package repository

import (
	"context"

	"hospital-appointment-service/internal/domain/entity"
	domainRepo "hospital-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const saveBatchSize = 200

// replaceAll deletes every row of the table and inserts rows in order, in one transaction.
func replaceAll[R any](ctx context.Context, db *gorm.DB, rows []R) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var zero R
		if err := tx.Where("1 = 1").Delete(&zero).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, saveBatchSize).Error
	})
}

type gormPatientRepository struct {
	db *gorm.DB
}

func NewGormPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &gormPatientRepository{db: db}
}

func (r *gormPatientRepository) LoadAll(ctx context.Context) ([]entity.Patient, error) {
	var rows []patientRow
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	patients := make([]entity.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, row.toEntity())
	}
	return patients, nil
}

func (r *gormPatientRepository) SaveAll(ctx context.Context, patients []entity.Patient) error {
	rows := make([]patientRow, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, toPatientRow(p))
	}
	return replaceAll(ctx, r.db, rows)
}

type gormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &gormDoctorRepository{db: db}
}

func (r *gormDoctorRepository) LoadAll(ctx context.Context) ([]entity.Doctor, error) {
	var rows []doctorRow
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	doctors := make([]entity.Doctor, 0, len(rows))
	for _, row := range rows {
		doctors = append(doctors, row.toEntity())
	}
	return doctors, nil
}

func (r *gormDoctorRepository) SaveAll(ctx context.Context, doctors []entity.Doctor) error {
	rows := make([]doctorRow, 0, len(doctors))
	for _, d := range doctors {
		rows = append(rows, toDoctorRow(d))
	}
	return replaceAll(ctx, r.db, rows)
}

type gormAppointmentRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormAppointmentRepository(db *gorm.DB, log *logrus.Logger) domainRepo.AppointmentRepository {
	return &gormAppointmentRepository{db: db, log: log}
}

func (r *gormAppointmentRepository) LoadAll(ctx context.Context) ([]*entity.Appointment, error) {
	var rows []appointmentRow
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	appointments := make([]*entity.Appointment, 0, len(rows))
	for _, row := range rows {
		a, err := row.toEntity()
		if err != nil {
			r.log.Warnf("Skipping malformed appointment row %s: %v", row.AppointmentID, err)
			continue
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func (r *gormAppointmentRepository) SaveAll(ctx context.Context, appointments []*entity.Appointment) error {
	rows := make([]appointmentRow, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, toAppointmentRow(a))
	}
	return replaceAll(ctx, r.db, rows)
}

type gormUserRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormUserRepository(db *gorm.DB, log *logrus.Logger) domainRepo.UserRepository {
	return &gormUserRepository{db: db, log: log}
}

func (r *gormUserRepository) LoadAll(ctx context.Context) ([]entity.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toEntity()
		if err != nil {
			r.log.Warnf("Skipping malformed user row %s: %v", row.Username, err)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *gormUserRepository) SaveAll(ctx context.Context, users []entity.User) error {
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, toUserRow(u))
	}
	return replaceAll(ctx, r.db, rows)
}

// NewGormEntityStore wires all four collections onto one database.
func NewGormEntityStore(db *gorm.DB, log *logrus.Logger) *domainRepo.EntityStore {
	return &domainRepo.EntityStore{
		Patients:     NewGormPatientRepository(db),
		Doctors:      NewGormDoctorRepository(db),
		Appointments: NewGormAppointmentRepository(db, log),
		Users:        NewGormUserRepository(db, log),
	}
}
