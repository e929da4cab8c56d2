package patient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for patients.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByMRN(ctx context.Context, mrn string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*Patient, int, error)
	Discharge(ctx context.Context, id uuid.UUID, at time.Time) error
}
