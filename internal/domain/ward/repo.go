package ward

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for wards, beds and
// assignments.
type Repository interface {
	CreateWard(ctx context.Context, w *Ward) error
	GetWard(ctx context.Context, id uuid.UUID) (*Ward, error)
	UpdateWard(ctx context.Context, w *Ward) error
	DeleteWard(ctx context.Context, id uuid.UUID) error
	ListWards(ctx context.Context, limit, offset int) ([]*Ward, int, error)

	CreateBed(ctx context.Context, b *Bed) error
	GetBed(ctx context.Context, id uuid.UUID) (*Bed, error)
	DeleteBed(ctx context.Context, id uuid.UUID) error
	SetBedStatus(ctx context.Context, id uuid.UUID, status string) error
	ListBedsByWard(ctx context.Context, wardID uuid.UUID) ([]*Bed, error)
	CountBedsByWard(ctx context.Context, wardID uuid.UUID) (int, error)

	CreateAssignment(ctx context.Context, a *Assignment) error
	// ActiveAssignmentForBed and ActiveAssignmentForPatient return
	// (nil, nil) when no live assignment exists; a non-nil error means the
	// lookup itself failed.
	ActiveAssignmentForBed(ctx context.Context, bedID uuid.UUID) (*Assignment, error)
	ActiveAssignmentForPatient(ctx context.Context, patientID uuid.UUID) (*Assignment, error)
	ReleaseAssignment(ctx context.Context, id uuid.UUID, at time.Time) error

	WardOccupancy(ctx context.Context, wardID uuid.UUID) (*Occupancy, error)
}
