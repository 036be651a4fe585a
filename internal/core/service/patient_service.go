package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hygia-health/hygia-api/internal/api/metrics"
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// PatientService implements admission and search over the injected in-memory
// patient directory.
type PatientService struct {
	directory ports.PatientDirectory
	logger    zerolog.Logger
}

func NewPatientService(directory ports.PatientDirectory, logger zerolog.Logger) *PatientService {
	return &PatientService{directory: directory, logger: logger}
}

// Admit creates a new directory entry with the next sequential identifier.
// No de-duplication by cedula is performed.
func (s *PatientService) Admit(ctx context.Context, input ports.AdmitPatientInput) (*domain.Patient, error) {
	patient := &domain.Patient{
		ID:        s.directory.NextID(),
		Name:      input.Name,
		Cedula:    input.Cedula,
		Phone:     input.Phone,
		Birthdate: input.Birthdate,
		Gender:    input.Gender,
	}
	s.directory.Append(patient)

	metrics.PatientsAdmittedTotal.Inc()
	s.logger.Info().Str("patient_id", patient.ID).Str("name", patient.Name).Msg("patient admitted")

	return patient, nil
}

// Search filters the directory by cedula substring or case-insensitive name
// substring, preserving insertion order. An empty query returns everything.
func (s *PatientService) Search(ctx context.Context, query string) ([]domain.Patient, error) {
	all := s.directory.All()

	query = strings.TrimSpace(query)
	if query == "" {
		metrics.PatientSearchesTotal.WithLabelValues("all").Inc()
		return all, nil
	}

	lowered := strings.ToLower(query)
	results := make([]domain.Patient, 0, len(all))
	for _, p := range all {
		if strings.Contains(p.Cedula, query) || strings.Contains(strings.ToLower(p.Name), lowered) {
			results = append(results, p)
		}
	}

	if len(results) == 0 {
		metrics.PatientSearchesTotal.WithLabelValues("empty").Inc()
	} else {
		metrics.PatientSearchesTotal.WithLabelValues("hit").Inc()
	}
	return results, nil
}
