package repository

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/domain/entity"
	domainRepo "hospital-appointment-service/internal/domain/repository"
)

type filePatientRepository struct {
	store *FileStore
}

func NewFilePatientRepository(store *FileStore) domainRepo.PatientRepository {
	return &filePatientRepository{store: store}
}

func (r *filePatientRepository) LoadAll(ctx context.Context) ([]entity.Patient, error) {
	return loadRecords(ctx, r.store, PatientsFile, converter.PatientFromRecord)
}

func (r *filePatientRepository) SaveAll(ctx context.Context, patients []entity.Patient) error {
	return saveRecords(ctx, r.store, PatientsFile, patients, converter.PatientToRecord)
}

type fileDoctorRepository struct {
	store *FileStore
}

func NewFileDoctorRepository(store *FileStore) domainRepo.DoctorRepository {
	return &fileDoctorRepository{store: store}
}

func (r *fileDoctorRepository) LoadAll(ctx context.Context) ([]entity.Doctor, error) {
	return loadRecords(ctx, r.store, DoctorsFile, converter.DoctorFromRecord)
}

func (r *fileDoctorRepository) SaveAll(ctx context.Context, doctors []entity.Doctor) error {
	return saveRecords(ctx, r.store, DoctorsFile, doctors, converter.DoctorToRecord)
}

type fileAppointmentRepository struct {
	store *FileStore
}

func NewFileAppointmentRepository(store *FileStore) domainRepo.AppointmentRepository {
	return &fileAppointmentRepository{store: store}
}

func (r *fileAppointmentRepository) LoadAll(ctx context.Context) ([]*entity.Appointment, error) {
	return loadRecords(ctx, r.store, AppointmentsFile, converter.AppointmentFromRecord)
}

func (r *fileAppointmentRepository) SaveAll(ctx context.Context, appointments []*entity.Appointment) error {
	return saveRecords(ctx, r.store, AppointmentsFile, appointments, converter.AppointmentToRecord)
}

type fileUserRepository struct {
	store *FileStore
}

func NewFileUserRepository(store *FileStore) domainRepo.UserRepository {
	return &fileUserRepository{store: store}
}

func (r *fileUserRepository) LoadAll(ctx context.Context) ([]entity.User, error) {
	return loadRecords(ctx, r.store, UsersFile, converter.UserFromRecord)
}

func (r *fileUserRepository) SaveAll(ctx context.Context, users []entity.User) error {
	return saveRecords(ctx, r.store, UsersFile, users, converter.UserToRecord)
}

// NewFileEntityStore wires all four collections onto one FileStore.
func NewFileEntityStore(store *FileStore) *domainRepo.EntityStore {
	return &domainRepo.EntityStore{
		Patients:     NewFilePatientRepository(store),
		Doctors:      NewFileDoctorRepository(store),
		Appointments: NewFileAppointmentRepository(store),
		Users:        NewFileUserRepository(store),
	}
}
