package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// PatientDirectory is the authoritative ordered list of patient records for
// the running process. Identifiers come from a monotonic counter rather than
// the current length, so they stay unique even if entries are ever removed.
// The mutex guards against concurrent HTTP handlers; there is a single owner
// but many readers.
type PatientDirectory struct {
	mu       sync.RWMutex
	patients []domain.Patient
	lastSeq  int
}

// NewPatientDirectory builds a directory containing the given seed patients,
// in order. The counter starts past the highest seeded sequence.
func NewPatientDirectory(seeds []domain.Patient) *PatientDirectory {
	d := &PatientDirectory{
		patients: make([]domain.Patient, 0, len(seeds)),
	}
	for _, p := range seeds {
		d.patients = append(d.patients, p)
	}
	d.lastSeq = len(seeds)
	return d
}

// DefaultSeedPatients returns the two standard demo patients.
func DefaultSeedPatients() []domain.Patient {
	return []domain.Patient{
		{
			ID:        "P001",
			Name:      "Ana María Soto",
			Cedula:    "101567890",
			Phone:     "+57 310 123 4567",
			Birthdate: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
			Gender:    "F",
		},
		{
			ID:        "P002",
			Name:      "Carlos Javier López",
			Cedula:    "101567891",
			Phone:     "+57 320 987 6543",
			Birthdate: time.Date(1985, time.November, 20, 0, 0, 0, 0, time.UTC),
			Gender:    "M",
		},
	}
}

// NextID reserves and formats the next sequential identifier ("P003").
func (d *PatientDirectory) NextID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastSeq++
	return fmt.Sprintf("P%03d", d.lastSeq)
}

// Append adds a patient at the end of the directory.
func (d *PatientDirectory) Append(patient *domain.Patient) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.patients = append(d.patients, *patient)
}

// All returns a copy of the directory in insertion order.
func (d *PatientDirectory) All() []domain.Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Patient, len(d.patients))
	copy(out, d.patients)
	return out
}

// FindByID returns the patient with the given identifier.
func (d *PatientDirectory) FindByID(id string) (*domain.Patient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.patients {
		if d.patients[i].ID == id {
			clone := d.patients[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}
