package ports

import (
	"context"
	"time"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// AdmitPatientInput carries the admission-form fields. Phone is the only
// optional field; no format validation is applied to cedula or phone.
type AdmitPatientInput struct {
	Name      string
	Cedula    string
	Birthdate time.Time
	Gender    string
	Phone     string
}

// PatientService covers the admission module: creation and search/listing
// over the in-memory patient directory.
type PatientService interface {
	// Admit assigns the next sequential identifier and appends the patient
	// to the directory. No de-duplication by cedula is performed.
	Admit(ctx context.Context, input AdmitPatientInput) (*domain.Patient, error)
	// Search returns patients whose cedula contains query as a substring or
	// whose name contains it case-insensitively, in insertion order. An
	// empty query returns the full directory.
	Search(ctx context.Context, query string) ([]domain.Patient, error)
}

// PatientDirectory is the authoritative ordered list of patient records for
// the running process. It is injected into the services that need it rather
// than shared as an ambient global.
type PatientDirectory interface {
	Append(patient *domain.Patient)
	// NextID returns the next formatted sequential identifier ("P003").
	// Backed by a monotonic counter, not by current directory length.
	NextID() string
	All() []domain.Patient
	FindByID(id string) (*domain.Patient, error)
}
