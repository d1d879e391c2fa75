package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/domain/entity"
)

func scheduleRequest(patientID, doctorID string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    doctorID,
		DateTime:    "2025-05-20T14:30",
		Description: "Annual checkup",
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	f := newFixture(t)
	staff, doc1, doc2 := as(staffUser), as(doctor1User), as(doctor2User)

	appt, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if appt.ID != "APP-1" || appt.Status() != entity.AppointmentStatusPendingApproval {
		t.Fatalf("appointment = %s", appt)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAppointmentScheduledPending {
		t.Fatalf("event = %+v", ev)
	}

	// another doctor's appointment looks missing
	_, err = f.hospital.AcceptAppointment(doc2, "APP-1")
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("doctor2 accept err = %v", err)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAppointmentActionDeclined || !strings.Contains(ev.Message, "appointment not found") {
		t.Fatalf("event = %+v", ev)
	}

	tr, err := f.hospital.AcceptAppointment(doc1, "APP-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if tr.From != entity.AppointmentStatusPendingApproval || tr.To != entity.AppointmentStatusAccepted {
		t.Fatalf("transition = %+v", tr)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAppointmentAccepted ||
		ev.Message != "ID: APP-1, Old Status: PENDING_APPROVAL, New Status: ACCEPTED by Dr. doctor1" {
		t.Fatalf("event = %+v", ev)
	}

	tr, err = f.hospital.RejectAppointment(doc1, "APP-1")
	if !errors.Is(err, entity.ErrInvalidState) || tr.Applied() {
		t.Fatalf("reject after accept = %+v, %v", tr, err)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAppointmentActionDeclined {
		t.Fatalf("event = %+v", ev)
	}

	tr, err = f.hospital.AcceptAppointment(doc1, "APP-1")
	if !errors.Is(err, entity.ErrAlreadyInState) || tr.Outcome != entity.OutcomeAlreadyInState {
		t.Fatalf("second accept = %+v, %v", tr, err)
	}

	tr, err = f.hospital.CancelAppointment(staff, "APP-1")
	if err != nil || tr.To != entity.AppointmentStatusCancelledByStaff {
		t.Fatalf("cancel = %+v, %v", tr, err)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAppointmentCancelled || !strings.HasSuffix(ev.Message, "by Staff staff") {
		t.Fatalf("event = %+v", ev)
	}

	tr, err = f.hospital.CancelAppointment(staff, "APP-1")
	if !errors.Is(err, entity.ErrInvalidState) || tr.AppointmentID != "APP-1" || tr.Applied() {
		t.Fatalf("second cancel = %+v, %v", tr, err)
	}

	all, _ := f.hospital.ListAppointments(staff)
	if len(all) != 1 || all[0].Status() != entity.AppointmentStatusCancelledByStaff {
		t.Fatalf("appointments = %v", all)
	}
}

func TestRejectAndCancelRejected(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)

	if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-2")); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	tr, err := f.hospital.RejectAppointment(as(doctor2User), "APP-1")
	if err != nil || tr.To != entity.AppointmentStatusRejected {
		t.Fatalf("reject = %+v, %v", tr, err)
	}

	if _, err := f.hospital.CancelAppointment(staff, "APP-1"); !errors.Is(err, entity.ErrInvalidState) {
		t.Fatalf("cancel rejected err = %v", err)
	}
	if _, err := f.hospital.CancelAppointment(staff, "APP-404"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("cancel missing err = %v", err)
	}
}

func TestScheduleAppointment_Failures(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)

	cases := []struct {
		name string
		req  *dto.CreateAppointmentRequest
		want error
	}{
		{"missing patient", scheduleRequest("PAT-404", "DOC-1"), ErrPatientNotFound},
		{"missing doctor", scheduleRequest("PAT-1", "DOC-404"), ErrDoctorNotFound},
		{"bad date", &dto.CreateAppointmentRequest{PatientID: "PAT-1", DoctorID: "DOC-1", DateTime: "20/05/2025"}, ErrInvalidDateFormat},
		{"line break in description", &dto.CreateAppointmentRequest{PatientID: "PAT-1", DoctorID: "DOC-1", DateTime: "2025-05-20T14:30", Description: "first line\nsecond line"}, ErrInvalidFieldValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := f.events.Len()
			appt, err := f.hospital.ScheduleAppointment(staff, tc.req)
			if appt != nil || !errors.Is(err, tc.want) {
				t.Fatalf("got %v, %v; want %v", appt, err, tc.want)
			}
			if f.events.Len() != before+1 || f.events.Last().Type != entity.EventAppointmentScheduleFailed {
				t.Fatalf("event = %+v", f.events.Last())
			}
		})
	}

	if all, _ := f.hospital.ListAppointments(staff); len(all) != 0 {
		t.Fatalf("failed schedules created %d appointments", len(all))
	}
	if _, err := f.hospital.ScheduleAppointment(as(doctor1User), scheduleRequest("PAT-1", "DOC-1")); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("doctor schedule err = %v", err)
	}
}

func TestListDoctorAppointments(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)

	for _, doc := range []string{"DOC-1", "DOC-1", "DOC-2"} {
		if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", doc)); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}
	if _, err := f.hospital.AcceptAppointment(as(doctor1User), "APP-2"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	own, err := f.hospital.ListDoctorAppointments(as(doctor1User), "DOC-1", nil)
	if err != nil || len(own) != 2 {
		t.Fatalf("own = %d, %v", len(own), err)
	}

	pending := entity.AppointmentStatusPendingApproval
	filtered, err := f.hospital.ListDoctorAppointments(staff, "DOC-1", &pending)
	if err != nil || len(filtered) != 1 || filtered[0].ID != "APP-1" {
		t.Fatalf("filtered = %v, %v", filtered, err)
	}

	other, err := f.hospital.ListDoctorAppointments(as(doctor1User), "DOC-2", nil)
	if !errors.Is(err, entity.ErrUnauthorized) || other == nil || len(other) != 0 {
		t.Fatalf("other = %v, %v", other, err)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAccessDenied {
		t.Fatalf("event = %+v", ev)
	}
}

func TestListAppointments_RoleClosed(t *testing.T) {
	f := newFixture(t)
	if _, err := f.hospital.ScheduleAppointment(as(staffUser), scheduleRequest("PAT-1", "DOC-1")); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	all, err := f.hospital.ListAppointments(as(doctor1User))
	if !errors.Is(err, entity.ErrUnauthorized) || len(all) != 0 {
		t.Fatalf("doctor ListAppointments = %v, %v", all, err)
	}

	byPatient, err := f.hospital.ListPatientAppointments(as(doctor2User), "PAT-1")
	if err != nil || len(byPatient) != 1 {
		t.Fatalf("ListPatientAppointments = %v, %v", byPatient, err)
	}
}

func TestListAppointments_ReturnsCopies(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)
	if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1")); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	all, _ := f.hospital.ListAppointments(staff)
	all[0].Cancel("mallory")

	again, _ := f.hospital.ListAppointments(staff)
	if again[0].Status() != entity.AppointmentStatusPendingApproval {
		t.Fatalf("mutating a returned appointment leaked into the store: %s", again[0].Status())
	}
}

func TestDoctorTransitions_RoleChecks(t *testing.T) {
	f := newFixture(t)
	if _, err := f.hospital.ScheduleAppointment(as(staffUser), scheduleRequest("PAT-1", "DOC-1")); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if _, err := f.hospital.AcceptAppointment(as(staffUser), "APP-1"); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("staff accept err = %v", err)
	}
	if _, err := f.hospital.CancelAppointment(as(doctor1User), "APP-1"); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("doctor cancel err = %v", err)
	}
	if _, err := f.hospital.RejectAppointment(context.Background(), "APP-1"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("anonymous reject err = %v", err)
	}
	if _, err := f.hospital.AcceptAppointment(as(unlinkedUser), "APP-1"); !errors.Is(err, ErrDoctorNotLinked) {
		t.Fatalf("unlinked accept err = %v", err)
	}

	appts, _ := f.hospital.ListAppointments(as(staffUser))
	if appts[0].Status() != entity.AppointmentStatusPendingApproval {
		t.Fatalf("status = %s", appts[0].Status())
	}
}

func TestProcessAppointmentAction(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)
	for i := 0; i < 2; i++ {
		if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1")); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}
	doc1 := as(doctor1User)

	tr, err := f.hospital.ProcessAppointmentAction(doc1, "APP-1", " accept ")
	if err != nil || tr.To != entity.AppointmentStatusAccepted {
		t.Fatalf("accept action = %+v, %v", tr, err)
	}
	tr, err = f.hospital.ProcessAppointmentAction(doc1, "APP-2", "Reject")
	if err != nil || tr.To != entity.AppointmentStatusRejected {
		t.Fatalf("reject action = %+v, %v", tr, err)
	}

	if _, err := f.hospital.ProcessAppointmentAction(doc1, "APP-1", "postpone"); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("invalid action err = %v", err)
	}
	if ev := f.events.Last(); ev.Type != entity.EventAppointmentActionDeclined || !strings.Contains(ev.Message, "postpone") {
		t.Fatalf("event = %+v", ev)
	}

	if _, err := f.hospital.ProcessAppointmentAction(staff, "APP-1", "accept"); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("staff action err = %v", err)
	}
}

func TestEveryCallRecordsOneEvent(t *testing.T) {
	f := newFixture(t)
	staff, doc1, doc2 := as(staffUser), as(doctor1User), as(doctor2User)

	calls := []struct {
		name string
		call func()
	}{
		{"login", func() { f.hospital.Login(context.Background(), "staff", "staff123") }},
		{"bad login", func() { f.hospital.Login(context.Background(), "staff", "nope") }},
		{"register", func() { f.hospital.RegisterPatient(staff, patientRequest()) }},
		{"register denied", func() { f.hospital.RegisterPatient(doc1, patientRequest()) }},
		{"add doctor", func() { f.hospital.AddDoctor(staff, doctorRequest("Fay Green")) }},
		{"schedule", func() { f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1")) }},
		{"schedule failed", func() { f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-9", "DOC-1")) }},
		{"accept foreign", func() { f.hospital.AcceptAppointment(doc2, "APP-3") }},
		{"accept", func() { f.hospital.AcceptAppointment(doc1, "APP-3") }},
		{"reject accepted", func() { f.hospital.RejectAppointment(doc1, "APP-3") }},
		{"cancel", func() { f.hospital.CancelAppointment(staff, "APP-3") }},
		{"cancel again", func() { f.hospital.CancelAppointment(staff, "APP-3") }},
		{"bad action", func() { f.hospital.ProcessAppointmentAction(doc1, "APP-3", "x") }},
		{"logout", func() { f.hospital.Logout(as(staffUser)) }},
	}

	for _, c := range calls {
		before := f.events.Len()
		c.call()
		if got := f.events.Len() - before; got != 1 {
			t.Errorf("%s recorded %d events", c.name, got)
		}
	}
}

func TestAppointmentsSurviveReload(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)

	if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1")); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if _, err := f.hospital.AcceptAppointment(as(doctor1User), "APP-1"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	reloaded, err := NewHospitalUsecase(context.Background(), quietLogger(), f.store, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	appts, err := reloaded.ListAppointments(staff)
	if err != nil || len(appts) != 1 {
		t.Fatalf("reloaded appointments = %v, %v", appts, err)
	}
	if appts[0].Status() != entity.AppointmentStatusAccepted || appts[0].Description != "Annual checkup" {
		t.Fatalf("reloaded = %s", appts[0])
	}
}

func TestRejectedDescriptionKeepsStoreWritable(t *testing.T) {
	f := newFixture(t)
	staff := as(staffUser)

	if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1")); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	bad := scheduleRequest("PAT-1", "DOC-1")
	bad.Description = "first line\r\nsecond line"
	if _, err := f.hospital.ScheduleAppointment(staff, bad); !errors.Is(err, ErrInvalidFieldValue) {
		t.Fatalf("line break err = %v", err)
	}
	if _, err := f.hospital.ScheduleAppointment(staff, scheduleRequest("PAT-1", "DOC-1")); err != nil {
		t.Fatalf("schedule after rejection: %v", err)
	}

	stored, err := f.store.Appointments.LoadAll(context.Background())
	if err != nil || len(stored) != 2 {
		t.Fatalf("stored appointments = %d, %v", len(stored), err)
	}
}
