package evolution

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for evolution notes.
type Repository interface {
	Create(ctx context.Context, e *Evolution) error
	GetByID(ctx context.Context, id uuid.UUID) (*Evolution, error)
	Update(ctx context.Context, e *Evolution) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Evolution, int, error)
}
