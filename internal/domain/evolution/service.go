package evolution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pedhosp/pedhosp/pkg/calc"
)

// Service provides business logic for evolution notes.
type Service struct {
	evolutions Repository
}

func NewService(evolutions Repository) *Service {
	return &Service{evolutions: evolutions}
}

func (s *Service) validate(e *Evolution) error {
	if e.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if e.Note == "" {
		return fmt.Errorf("note is required")
	}
	if e.WeightKg != nil && *e.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	if e.HeightCm != nil && *e.HeightCm <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	if e.SpO2 != nil && (*e.SpO2 < 0 || *e.SpO2 > 100) {
		return fmt.Errorf("spo2 must be between 0 and 100")
	}
	return nil
}

// deriveBMI recomputes the stored BMI from the measurements of the
// note. Client-supplied BMI is always discarded.
func (s *Service) deriveBMI(e *Evolution) {
	e.BMI = nil
	if e.WeightKg == nil || e.HeightCm == nil {
		return
	}
	if bmi, ok := calc.BMI(*e.WeightKg, *e.HeightCm); ok {
		e.BMI = &bmi
	}
}

func (s *Service) CreateEvolution(ctx context.Context, e *Evolution) error {
	if err := s.validate(e); err != nil {
		return err
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	s.deriveBMI(e)
	return s.evolutions.Create(ctx, e)
}

func (s *Service) GetEvolution(ctx context.Context, id uuid.UUID) (*Evolution, error) {
	return s.evolutions.GetByID(ctx, id)
}

func (s *Service) UpdateEvolution(ctx context.Context, e *Evolution) error {
	if err := s.validate(e); err != nil {
		return err
	}
	s.deriveBMI(e)
	return s.evolutions.Update(ctx, e)
}

func (s *Service) DeleteEvolution(ctx context.Context, id uuid.UUID) error {
	return s.evolutions.Delete(ctx, id)
}

func (s *Service) ListEvolutionsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Evolution, int, error) {
	return s.evolutions.ListByPatient(ctx, patientID, limit, offset)
}
