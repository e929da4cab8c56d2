package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides business logic for the patient census.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) AdmitPatient(ctx context.Context, p *Patient) error {
	if p.MRN == "" {
		return fmt.Errorf("mrn is required")
	}
	if p.GivenName == "" {
		return fmt.Errorf("given_name is required")
	}
	if p.FamilyName == "" {
		return fmt.Errorf("family_name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("date_of_birth is required")
	}
	if p.DateOfBirth.After(time.Now()) {
		return fmt.Errorf("date_of_birth must not be in the future")
	}
	if p.Sex != "M" && p.Sex != "F" {
		return fmt.Errorf("sex must be M or F")
	}
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	if p.AdmittedAt.IsZero() {
		p.AdmittedAt = time.Now()
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) GetPatientByMRN(ctx context.Context, mrn string) (*Patient, error) {
	return s.patients.GetByMRN(ctx, mrn)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, activeOnly bool, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, activeOnly, limit, offset)
}

// DischargePatient marks the patient as discharged. Discharging twice
// is an error.
func (s *Service) DischargePatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.DischargedAt != nil {
		return nil, fmt.Errorf("patient already discharged")
	}
	now := time.Now()
	if err := s.patients.Discharge(ctx, id, now); err != nil {
		return nil, err
	}
	p.DischargedAt = &now
	return p, nil
}
