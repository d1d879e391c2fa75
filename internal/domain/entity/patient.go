package entity

import "fmt"

// PatientIDPrefix prefixes every generated patient id
const PatientIDPrefix = "PAT-"

// Patient represents a registered patient
type Patient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
}

func (p Patient) String() string {
	return fmt.Sprintf("Patient ID: %s, Name: %s, Contact: %s, Age: %d, Gender: %s, Address: %s",
		p.ID, p.Name, p.ContactNumber, p.Age, p.Gender, p.Address)
}
