package usecase

import (
	"context"
	"fmt"

	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

func (u *hospitalUsecase) RegisterPatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	user, err := u.authorize(ctx, "register patient", entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	if err := checkRecordText("name", req.Name, "contact number", req.ContactNumber,
		"gender", req.Gender, "address", req.Address); err != nil {
		u.events.Record(entity.EventPatientRegisterFailed, fmt.Sprintf("%v, requested by %s", err, user.Username))
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	patient := entity.Patient{
		ID:            u.newID(entity.PatientIDPrefix),
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Age:           req.Age,
		Gender:        req.Gender,
		Address:       req.Address,
	}
	u.patients = append(u.patients, patient)
	u.persistPatients(ctx)

	u.events.Record(entity.EventPatientRegistered, fmt.Sprintf("%s by %s", patient, user.Username))
	return &patient, nil
}

func (u *hospitalUsecase) ListPatients(ctx context.Context) ([]entity.Patient, error) {
	if _, err := u.authorize(ctx, "view patients"); err != nil {
		return []entity.Patient{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	patients := make([]entity.Patient, len(u.patients))
	copy(patients, u.patients)
	return patients, nil
}

func (u *hospitalUsecase) FindPatient(ctx context.Context, patientID string) (*entity.Patient, error) {
	if _, err := u.authorize(ctx, "find patient"); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if p, ok := u.findPatient(patientID); ok {
		return &p, nil
	}
	return nil, ErrPatientNotFound
}

// findPatient expects u.mu to be held.
func (u *hospitalUsecase) findPatient(patientID string) (entity.Patient, bool) {
	for _, p := range u.patients {
		if p.ID == patientID {
			return p, true
		}
	}
	return entity.Patient{}, false
}
