package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hospital-appointment-service/internal/domain/entity"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), quietLogger())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestNewFileStore_CreatesFiles(t *testing.T) {
	store := newTestFileStore(t)
	for _, name := range []string{PatientsFile, DoctorsFile, AppointmentsFile, UsersFile, ActivityLogFile} {
		empty, err := store.IsEmpty(name)
		if err != nil || !empty {
			t.Errorf("%s: empty = %v, err = %v", name, empty, err)
		}
	}
}

func TestFileEntityStore_RoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	entities := NewFileEntityStore(store)

	patients := []entity.Patient{
		{ID: "PAT-1", Name: "Jane", ContactNumber: "555", Age: 30, Gender: "F", Address: "Main St"},
		{ID: "PAT-2", Name: "John", ContactNumber: "556", Age: 41, Gender: "M", Address: "High St"},
	}
	if err := entities.Patients.SaveAll(ctx, patients); err != nil {
		t.Fatalf("save patients: %v", err)
	}
	gotPatients, err := entities.Patients.LoadAll(ctx)
	if err != nil || len(gotPatients) != 2 || gotPatients[1] != patients[1] {
		t.Fatalf("load patients = %+v, %v", gotPatients, err)
	}

	doctors := []entity.Doctor{{ID: "DOC-1", Name: "Dr A", ContactNumber: "1", Specialization: "GP", Department: "General"}}
	if err := entities.Doctors.SaveAll(ctx, doctors); err != nil {
		t.Fatalf("save doctors: %v", err)
	}
	if got, err := entities.Doctors.LoadAll(ctx); err != nil || len(got) != 1 || got[0] != doctors[0] {
		t.Fatalf("load doctors = %+v, %v", got, err)
	}

	at := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	appt, _ := entity.RestoreAppointment("APP-1", "PAT-1", "DOC-1", at, "checkup", entity.AppointmentStatusRejected)
	if err := entities.Appointments.SaveAll(ctx, []*entity.Appointment{appt}); err != nil {
		t.Fatalf("save appointments: %v", err)
	}
	gotAppts, err := entities.Appointments.LoadAll(ctx)
	if err != nil || len(gotAppts) != 1 {
		t.Fatalf("load appointments = %+v, %v", gotAppts, err)
	}
	if gotAppts[0].Status() != entity.AppointmentStatusRejected || !gotAppts[0].DateTime.Equal(at) {
		t.Fatalf("appointment = %s", gotAppts[0])
	}

	users := []entity.User{
		{Username: "staff", Password: "staff123", Role: entity.RoleStaff},
		{Username: "doctor1", Password: "doc123", Role: entity.RoleDoctor, EntityID: "DOC-1"},
	}
	if err := entities.Users.SaveAll(ctx, users); err != nil {
		t.Fatalf("save users: %v", err)
	}
	if got, err := entities.Users.LoadAll(ctx); err != nil || len(got) != 2 || got[1] != users[1] {
		t.Fatalf("load users = %+v, %v", got, err)
	}

	raw, err := os.ReadFile(filepath.Join(store.Dir(), UsersFile))
	if err != nil {
		t.Fatalf("read users file: %v", err)
	}
	if string(raw) != "staff,staff123,STAFF,null\ndoctor1,doc123,DOCTOR,DOC-1\n" {
		t.Fatalf("users file = %q", raw)
	}
}

func TestFileStore_SkipsMalformedLines(t *testing.T) {
	store := newTestFileStore(t)
	content := "PAT-1,Jane,555,30,F,Main St\n\nbroken line\nPAT-2,John,556,abc,M,High St\nPAT-3,Ann,557,22,F,Low St\n"
	if err := os.WriteFile(store.Path(PatientsFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFilePatientRepository(store).LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 2 || got[0].ID != "PAT-1" || got[1].ID != "PAT-3" {
		t.Fatalf("loaded %+v", got)
	}
}

func TestFileStore_SaveReplacesContent(t *testing.T) {
	store := newTestFileStore(t)
	repo := NewFileDoctorRepository(store)

	if err := repo.SaveAll(ctx, []entity.Doctor{{ID: "DOC-1", Name: "A", ContactNumber: "1", Specialization: "S", Department: "D"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveAll(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if empty, _ := store.IsEmpty(DoctorsFile); !empty {
		t.Fatal("saving no doctors should truncate the file")
	}

	entries, _ := os.ReadDir(store.Dir())
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFileStore_LineBreakInFieldKeepsFile(t *testing.T) {
	store := newTestFileStore(t)
	repo := NewFileAppointmentRepository(store)

	at := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	first, _ := entity.RestoreAppointment("APP-1", "PAT-1", "DOC-1", at, "checkup", entity.AppointmentStatusPendingApproval)
	second, _ := entity.RestoreAppointment("APP-2", "PAT-1", "DOC-1", at, "follow up", entity.AppointmentStatusAccepted)
	if err := repo.SaveAll(ctx, []*entity.Appointment{first, second}); err != nil {
		t.Fatalf("save: %v", err)
	}
	before, _ := os.ReadFile(store.Path(AppointmentsFile))

	broken, _ := entity.RestoreAppointment("APP-3", "PAT-1", "DOC-1", at, "first line\nsecond line", entity.AppointmentStatusPendingApproval)
	err := repo.SaveAll(ctx, []*entity.Appointment{first, second, broken})
	if !errors.Is(err, entity.ErrMalformedRecord) {
		t.Fatalf("save with line break: err = %v", err)
	}

	after, _ := os.ReadFile(store.Path(AppointmentsFile))
	if string(after) != string(before) {
		t.Fatalf("appointments file changed to %q", after)
	}
	got, err := repo.LoadAll(ctx)
	if err != nil || len(got) != 2 || got[0].ID != "APP-1" || got[1].ID != "APP-2" {
		t.Fatalf("reloaded %v, %v", got, err)
	}
}

func TestFileStore_AppendLine(t *testing.T) {
	store := newTestFileStore(t)
	for _, line := range []string{"first", "second"} {
		if err := store.AppendLine(ActivityLogFile, line); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	raw, _ := os.ReadFile(store.Path(ActivityLogFile))
	if string(raw) != "first\nsecond\n" {
		t.Fatalf("activity log = %q", raw)
	}
}

func TestFileStore_CancelledContext(t *testing.T) {
	store := newTestFileStore(t)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFilePatientRepository(store).LoadAll(cctx); err == nil {
		t.Fatal("expected context error")
	}
}
