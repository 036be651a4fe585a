package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")
var ErrNoActivePatient = errors.New("no active patient loaded")
var ErrEmptyNote = errors.New("note content is empty")

// Patient is an admitted patient in the in-memory directory.
// IDs are formatted "P" + zero-padded sequence ("P001", "P002", …) from a
// monotonic counter, so they stay unique even if entries are ever removed.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cedula    string    `json:"cedula"`
	Phone     string    `json:"phone,omitempty"`
	Birthdate time.Time `json:"birthdate"`
	Gender    string    `json:"gender"`
}

// AgeAt returns the patient's age in completed years at the given date:
// the naive year difference, minus one when the date's month/day precedes
// the birth month/day (birthdays not yet reached don't count).
func (p *Patient) AgeAt(at time.Time) int {
	age := at.Year() - p.Birthdate.Year()
	if at.Month() < p.Birthdate.Month() ||
		(at.Month() == p.Birthdate.Month() && at.Day() < p.Birthdate.Day()) {
		age--
	}
	return age
}

// ClinicalNote is a free-text evolution note. It is never persisted: the
// record service writes it to the diagnostic log and discards it.
type ClinicalNote struct {
	PatientID string
	Text      string
}
