package ports

import (
	"context"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// RecordSummary is the demographic header shown at the top of the clinical
// record page.
type RecordSummary struct {
	Patient *domain.Patient
	Age     int
}

// RecordService resolves a patient for the clinical-record page and accepts
// evolution notes.
type RecordService interface {
	// Lookup resolves a patient by identifier and computes the age in
	// completed years. Returns domain.ErrNoActivePatient for an empty id and
	// domain.ErrPatientNotFound when the id matches nothing.
	Lookup(ctx context.Context, patientID string) (*RecordSummary, error)
	// SaveNote writes the note to the diagnostic log and discards it. The
	// note is rejected when no patient matches patientID or when the text is
	// blank after trimming.
	SaveNote(ctx context.Context, patientID, text string) error
}
