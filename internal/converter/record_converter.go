package converter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hospital-appointment-service/internal/domain/entity"
)

// Flat-file record encoding. Every entity is one comma-joined line with a
// fixed field order. Encoders refuse fields that would split the line and
// parsers wrap entity.ErrMalformedRecord on bad input.

const (
	recordSeparator  = ","
	nullEntityID     = "null"
	recordTimeLayout = "2006-01-02T15:04:05.999999999"
	// recordBreakers separate fields and records on disk.
	recordBreakers = ",\r\n"
)

// recordTimeLayouts are tried in order when reading a dateTime field.
var recordTimeLayouts = []string{
	recordTimeLayout,
	"2006-01-02T15:04",
}

// splitRecord splits on commas and drops trailing empty fields, so
// "a,b,," has two fields.
func splitRecord(line string) []string {
	parts := strings.Split(line, recordSeparator)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// CheckRecordField rejects a value that cannot be stored as one field.
func CheckRecordField(name, value string) error {
	if strings.ContainsAny(value, recordBreakers) {
		return fmt.Errorf("%w: %s must not contain commas or line breaks", entity.ErrMalformedRecord, name)
	}
	return nil
}

func joinRecord(kind string, fields ...string) (string, error) {
	for i, field := range fields {
		if err := CheckRecordField(fmt.Sprintf("%s field %d", kind, i+1), field); err != nil {
			return "", err
		}
	}
	return strings.Join(fields, recordSeparator), nil
}

func malformed(kind, line, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s %q: %s", entity.ErrMalformedRecord, kind, line, fmt.Sprintf(format, args...))
}

// PatientToRecord encodes id,name,contact,age,gender,address
func PatientToRecord(p entity.Patient) (string, error) {
	return joinRecord("patient", p.ID, p.Name, p.ContactNumber, strconv.Itoa(p.Age), p.Gender, p.Address)
}

func PatientFromRecord(line string) (entity.Patient, error) {
	parts := splitRecord(line)
	if len(parts) != 6 {
		return entity.Patient{}, malformed("patient", line, "expected 6 fields, got %d", len(parts))
	}
	age, err := strconv.Atoi(parts[3])
	if err != nil {
		return entity.Patient{}, malformed("patient", line, "invalid age %q", parts[3])
	}
	return entity.Patient{
		ID:            parts[0],
		Name:          parts[1],
		ContactNumber: parts[2],
		Age:           age,
		Gender:        parts[4],
		Address:       parts[5],
	}, nil
}

// DoctorToRecord encodes id,name,contact,specialization,department
func DoctorToRecord(d entity.Doctor) (string, error) {
	return joinRecord("doctor", d.ID, d.Name, d.ContactNumber, d.Specialization, d.Department)
}

func DoctorFromRecord(line string) (entity.Doctor, error) {
	parts := splitRecord(line)
	if len(parts) != 5 {
		return entity.Doctor{}, malformed("doctor", line, "expected 5 fields, got %d", len(parts))
	}
	return entity.Doctor{
		ID:             parts[0],
		Name:           parts[1],
		ContactNumber:  parts[2],
		Specialization: parts[3],
		Department:     parts[4],
	}, nil
}

// AppointmentToRecord encodes id,patientId,doctorId,dateTime,description,status
func AppointmentToRecord(a *entity.Appointment) (string, error) {
	return joinRecord("appointment",
		a.ID,
		a.PatientID,
		a.DoctorID,
		FormatDateTime(a.DateTime),
		a.Description,
		a.Status().String(),
	)
}

func AppointmentFromRecord(line string) (*entity.Appointment, error) {
	parts := splitRecord(line)
	if len(parts) != 6 {
		return nil, malformed("appointment", line, "expected 6 fields, got %d", len(parts))
	}
	dt, err := ParseDateTime(parts[3])
	if err != nil {
		return nil, malformed("appointment", line, "invalid dateTime %q", parts[3])
	}
	status, err := entity.ParseAppointmentStatus(parts[5])
	if err != nil {
		return nil, malformed("appointment", line, "%v", err)
	}
	return entity.RestoreAppointment(parts[0], parts[1], parts[2], dt, parts[4], status)
}

// UserToRecord encodes username,password,role,entityId with "null" for no link
func UserToRecord(u entity.User) (string, error) {
	entityID := nullEntityID
	if u.HasEntityID() {
		entityID = u.EntityID
	}
	return joinRecord("user", u.Username, u.Password, u.Role.String(), entityID)
}

// UserFromRecord keeps empty fields, unlike the other record parsers.
func UserFromRecord(line string) (entity.User, error) {
	parts := strings.Split(line, recordSeparator)
	if len(parts) != 4 {
		return entity.User{}, malformed("user", line, "expected 4 fields, got %d", len(parts))
	}
	role, err := entity.ParseRole(parts[2])
	if err != nil {
		return entity.User{}, malformed("user", line, "%v", err)
	}
	entityID := parts[3]
	if entityID == nullEntityID {
		entityID = ""
	}
	return entity.User{
		Username: parts[0],
		Password: parts[1],
		Role:     role,
		EntityID: entityID,
	}, nil
}

// FormatDateTime renders an ISO local date-time, fractional seconds only when set.
func FormatDateTime(t time.Time) string {
	return t.Format(recordTimeLayout)
}

// ParseDateTime reads an ISO local date-time with or without seconds.
func ParseDateTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range recordTimeLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(value))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
