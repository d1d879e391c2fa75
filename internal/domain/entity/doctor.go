package entity

import "fmt"

// DoctorIDPrefix prefixes every generated doctor id
const DoctorIDPrefix = "DOC-"

// Doctor represents a doctor record. A DOCTOR user acts on its behalf
// through User.EntityID.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ContactNumber  string `json:"contact_number"`
	Specialization string `json:"specialization"`
	Department     string `json:"department"`
}

func (d Doctor) String() string {
	return fmt.Sprintf("Doctor ID: %s, Name: %s, Contact: %s, Specialization: %s, Department: %s",
		d.ID, d.Name, d.ContactNumber, d.Specialization, d.Department)
}
