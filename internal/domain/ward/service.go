package ward

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pedhosp/pedhosp/internal/platform/db"
)

// Service provides business logic for wards, beds and assignments.
type Service struct {
	wards Repository
	db    db.Beginner
}

func NewService(wards Repository, beginner db.Beginner) *Service {
	return &Service{wards: wards, db: beginner}
}

func (s *Service) CreateWard(ctx context.Context, w *Ward) error {
	if w.Name == "" {
		return fmt.Errorf("name is required")
	}
	if w.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return s.wards.CreateWard(ctx, w)
}

func (s *Service) GetWard(ctx context.Context, id uuid.UUID) (*Ward, error) {
	return s.wards.GetWard(ctx, id)
}

func (s *Service) UpdateWard(ctx context.Context, w *Ward) error {
	if w.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return s.wards.UpdateWard(ctx, w)
}

func (s *Service) DeleteWard(ctx context.Context, id uuid.UUID) error {
	return s.wards.DeleteWard(ctx, id)
}

func (s *Service) ListWards(ctx context.Context, limit, offset int) ([]*Ward, int, error) {
	return s.wards.ListWards(ctx, limit, offset)
}

// AddBed creates a bed in a ward. Adding beyond the ward capacity is
// rejected.
func (s *Service) AddBed(ctx context.Context, b *Bed) error {
	if b.WardID == uuid.Nil {
		return fmt.Errorf("ward_id is required")
	}
	if b.Code == "" {
		return fmt.Errorf("code is required")
	}
	w, err := s.wards.GetWard(ctx, b.WardID)
	if err != nil {
		return fmt.Errorf("ward not found")
	}
	count, err := s.wards.CountBedsByWard(ctx, b.WardID)
	if err != nil {
		return err
	}
	if count >= w.Capacity {
		return fmt.Errorf("ward %s is at capacity (%d beds)", w.Name, w.Capacity)
	}
	return s.wards.CreateBed(ctx, b)
}

func (s *Service) GetBed(ctx context.Context, id uuid.UUID) (*Bed, error) {
	return s.wards.GetBed(ctx, id)
}

func (s *Service) ListBeds(ctx context.Context, wardID uuid.UUID) ([]*Bed, error) {
	return s.wards.ListBedsByWard(ctx, wardID)
}

// RemoveBed deletes a bed. Occupied beds cannot be removed.
func (s *Service) RemoveBed(ctx context.Context, id uuid.UUID) error {
	b, err := s.wards.GetBed(ctx, id)
	if err != nil {
		return fmt.Errorf("bed not found")
	}
	if b.Status == BedOccupied {
		return fmt.Errorf("bed %s is occupied", b.Code)
	}
	return s.wards.DeleteBed(ctx, id)
}

// SetBedMaintenance toggles a bed in or out of maintenance. An occupied
// bed cannot enter maintenance.
func (s *Service) SetBedMaintenance(ctx context.Context, id uuid.UUID, maintenance bool) error {
	b, err := s.wards.GetBed(ctx, id)
	if err != nil {
		return fmt.Errorf("bed not found")
	}
	if maintenance {
		if b.Status == BedOccupied {
			return fmt.Errorf("bed %s is occupied", b.Code)
		}
		return s.wards.SetBedStatus(ctx, id, BedMaintenance)
	}
	if b.Status != BedMaintenance {
		return nil
	}
	return s.wards.SetBedStatus(ctx, id, BedAvailable)
}

// AssignBed places a patient into a bed. The bed must be available and
// the patient must not already occupy another bed.
func (s *Service) AssignBed(ctx context.Context, bedID, patientID uuid.UUID) (*Assignment, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	b, err := s.wards.GetBed(ctx, bedID)
	if err != nil {
		return nil, fmt.Errorf("bed not found")
	}
	if b.Status != BedAvailable {
		return nil, fmt.Errorf("bed %s is not available", b.Code)
	}
	existing, err := s.wards.ActiveAssignmentForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("patient already assigned to a bed")
	}

	// Both writes succeed or neither does: an assignment row must never
	// exist against a bed still marked available.
	a := &Assignment{BedID: bedID, PatientID: patientID, AssignedAt: time.Now()}
	err = db.InTx(ctx, s.db, func(ctx context.Context) error {
		if err := s.wards.CreateAssignment(ctx, a); err != nil {
			return err
		}
		return s.wards.SetBedStatus(ctx, bedID, BedOccupied)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ReleaseBed frees the bed a patient occupies.
func (s *Service) ReleaseBed(ctx context.Context, bedID uuid.UUID) error {
	a, err := s.wards.ActiveAssignmentForBed(ctx, bedID)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("bed has no active assignment")
	}
	return db.InTx(ctx, s.db, func(ctx context.Context) error {
		if err := s.wards.ReleaseAssignment(ctx, a.ID, time.Now()); err != nil {
			return err
		}
		return s.wards.SetBedStatus(ctx, bedID, BedAvailable)
	})
}

func (s *Service) WardOccupancy(ctx context.Context, wardID uuid.UUID) (*Occupancy, error) {
	if _, err := s.wards.GetWard(ctx, wardID); err != nil {
		return nil, fmt.Errorf("ward not found")
	}
	return s.wards.WardOccupancy(ctx, wardID)
}
