package repository

// EntityStore groups the four collections backed by one storage driver.
type EntityStore struct {
	Patients     PatientRepository
	Doctors      DoctorRepository
	Appointments AppointmentRepository
	Users        UserRepository
}
