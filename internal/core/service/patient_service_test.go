package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hygia-health/hygia-api/internal/core/ports"
	"github.com/hygia-health/hygia-api/internal/infrastructure/memory"
)

func newTestPatientService() *PatientService {
	return NewPatientService(memory.NewPatientDirectory(memory.DefaultSeedPatients()), zerolog.Nop())
}

func TestPatientService_Search_EmptyQueryReturnsAllInOrder(t *testing.T) {
	svc := newTestPatientService()

	results, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 seed patients, got %d", len(results))
	}
	if results[0].ID != "P001" || results[1].ID != "P002" {
		t.Fatalf("insertion order not preserved: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestPatientService_Search_ByCedula(t *testing.T) {
	svc := newTestPatientService()

	results, err := svc.Search(context.Background(), "101567890")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(results))
	}
	if results[0].Cedula != "101567890" {
		t.Fatalf("wrong patient matched: %s", results[0].Cedula)
	}
}

func TestPatientService_Search_ByNameCaseInsensitive(t *testing.T) {
	svc := newTestPatientService()

	results, err := svc.Search(context.Background(), "carlos")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "P002" {
		t.Fatalf("expected P002 for query 'carlos', got %v", results)
	}
}

func TestPatientService_Search_NoMatches(t *testing.T) {
	svc := newTestPatientService()

	results, err := svc.Search(context.Background(), "zzz-no-such-patient")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %d", len(results))
	}
}

func TestPatientService_Admit_SequentialIdentifiers(t *testing.T) {
	svc := newTestPatientService()
	input := ports.AdmitPatientInput{
		Name:      "Luisa Fernanda Ortiz",
		Cedula:    "101567892",
		Birthdate: time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC),
		Gender:    "F",
	}

	third, err := svc.Admit(context.Background(), input)
	if err != nil {
		t.Fatalf("Admit returned error: %v", err)
	}
	if third.ID != "P003" {
		t.Fatalf("third patient ID = %s, want P003", third.ID)
	}

	input.Name = "Jorge Iván Mejía"
	input.Cedula = "101567893"
	input.Gender = "M"
	fourth, err := svc.Admit(context.Background(), input)
	if err != nil {
		t.Fatalf("Admit returned error: %v", err)
	}
	if fourth.ID != "P004" {
		t.Fatalf("fourth patient ID = %s, want P004", fourth.ID)
	}

	all, _ := svc.Search(context.Background(), "")
	if len(all) != 4 {
		t.Fatalf("directory should hold 4 patients, got %d", len(all))
	}
	if all[3].ID != "P004" {
		t.Fatalf("new patients must append at the end, last = %s", all[3].ID)
	}
}

func TestPatientService_Admit_NoCedulaDeduplication(t *testing.T) {
	svc := newTestPatientService()
	input := ports.AdmitPatientInput{
		Name:      "Ana María Soto",
		Cedula:    "101567890", // same as P001
		Birthdate: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		Gender:    "F",
	}

	patient, err := svc.Admit(context.Background(), input)
	if err != nil {
		t.Fatalf("duplicate cedula should still admit: %v", err)
	}
	if patient.ID != "P003" {
		t.Fatalf("duplicate got ID %s, want P003", patient.ID)
	}
}
