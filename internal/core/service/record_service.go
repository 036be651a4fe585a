package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hygia-health/hygia-api/internal/api/metrics"
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// RecordService resolves patients for the clinical-record page and handles
// evolution notes. Notes are written to the diagnostic log and discarded;
// they are not retained anywhere retrievable.
type RecordService struct {
	directory ports.PatientDirectory
	logger    zerolog.Logger
	now       func() time.Time
}

func NewRecordService(directory ports.PatientDirectory, logger zerolog.Logger) *RecordService {
	return &RecordService{directory: directory, logger: logger, now: time.Now}
}

// Lookup resolves the active patient and computes the age in completed years.
func (s *RecordService) Lookup(ctx context.Context, patientID string) (*ports.RecordSummary, error) {
	if patientID == "" {
		return nil, domain.ErrNoActivePatient
	}
	patient, err := s.directory.FindByID(patientID)
	if err != nil {
		return nil, err
	}
	return &ports.RecordSummary{
		Patient: patient,
		Age:     patient.AgeAt(s.now()),
	}, nil
}

// SaveNote validates and "saves" a note. Rejections are distinct: no loaded
// patient vs blank content. On success nothing is mutated.
func (s *RecordService) SaveNote(ctx context.Context, patientID, text string) error {
	if patientID == "" {
		return domain.ErrNoActivePatient
	}
	patient, err := s.directory.FindByID(patientID)
	if err != nil {
		return domain.ErrNoActivePatient
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyNote
	}

	// The only sink for notes.
	s.logger.Info().
		Str("patient_id", patient.ID).
		Str("patient_name", patient.Name).
		Str("note", text).
		Msg("clinical note recorded")

	metrics.NotesLoggedTotal.Inc()
	return nil
}
