package ward

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedhosp/pedhosp/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type wardRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &wardRepoPG{pool: pool}
}

func (r *wardRepoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

const wardCols = `id, name, floor, capacity, created_at, updated_at`
const bedCols = `id, ward_id, code, status, created_at, updated_at`
const assignmentCols = `id, bed_id, patient_id, assigned_at, released_at`

func (r *wardRepoPG) scanWard(row pgx.Row) (*Ward, error) {
	var w Ward
	err := row.Scan(&w.ID, &w.Name, &w.Floor, &w.Capacity, &w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *wardRepoPG) scanBed(row pgx.Row) (*Bed, error) {
	var b Bed
	err := row.Scan(&b.ID, &b.WardID, &b.Code, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *wardRepoPG) scanAssignment(row pgx.Row) (*Assignment, error) {
	var a Assignment
	err := row.Scan(&a.ID, &a.BedID, &a.PatientID, &a.AssignedAt, &a.ReleasedAt)
	return &a, err
}

// -- Wards --

func (r *wardRepoPG) CreateWard(ctx context.Context, w *Ward) error {
	w.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO ward (id, name, floor, capacity) VALUES ($1,$2,$3,$4)`,
		w.ID, w.Name, w.Floor, w.Capacity)
	return err
}

func (r *wardRepoPG) GetWard(ctx context.Context, id uuid.UUID) (*Ward, error) {
	return r.scanWard(r.conn(ctx).QueryRow(ctx, `SELECT `+wardCols+` FROM ward WHERE id = $1`, id))
}

func (r *wardRepoPG) UpdateWard(ctx context.Context, w *Ward) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE ward SET name=$2, floor=$3, capacity=$4, updated_at=NOW() WHERE id = $1`,
		w.ID, w.Name, w.Floor, w.Capacity)
	return err
}

func (r *wardRepoPG) DeleteWard(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM ward WHERE id = $1`, id)
	return err
}

func (r *wardRepoPG) ListWards(ctx context.Context, limit, offset int) ([]*Ward, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM ward`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+wardCols+` FROM ward ORDER BY floor, name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Ward
	for rows.Next() {
		w, err := r.scanWard(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	return items, total, nil
}

// -- Beds --

func (r *wardRepoPG) CreateBed(ctx context.Context, b *Bed) error {
	b.ID = uuid.New()
	if b.Status == "" {
		b.Status = BedAvailable
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO bed (id, ward_id, code, status) VALUES ($1,$2,$3,$4)`,
		b.ID, b.WardID, b.Code, b.Status)
	return err
}

func (r *wardRepoPG) GetBed(ctx context.Context, id uuid.UUID) (*Bed, error) {
	return r.scanBed(r.conn(ctx).QueryRow(ctx, `SELECT `+bedCols+` FROM bed WHERE id = $1`, id))
}

func (r *wardRepoPG) DeleteBed(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM bed WHERE id = $1`, id)
	return err
}

func (r *wardRepoPG) SetBedStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE bed SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	return err
}

func (r *wardRepoPG) ListBedsByWard(ctx context.Context, wardID uuid.UUID) ([]*Bed, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+bedCols+` FROM bed WHERE ward_id = $1 ORDER BY code`, wardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Bed
	for rows.Next() {
		b, err := r.scanBed(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func (r *wardRepoPG) CountBedsByWard(ctx context.Context, wardID uuid.UUID) (int, error) {
	var count int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM bed WHERE ward_id = $1`, wardID).Scan(&count)
	return count, err
}

// -- Assignments --

func (r *wardRepoPG) CreateAssignment(ctx context.Context, a *Assignment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO bed_assignment (id, bed_id, patient_id, assigned_at) VALUES ($1,$2,$3,$4)`,
		a.ID, a.BedID, a.PatientID, a.AssignedAt)
	return err
}

func (r *wardRepoPG) ActiveAssignmentForBed(ctx context.Context, bedID uuid.UUID) (*Assignment, error) {
	a, err := r.scanAssignment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assignmentCols+` FROM bed_assignment WHERE bed_id = $1 AND released_at IS NULL`, bedID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *wardRepoPG) ActiveAssignmentForPatient(ctx context.Context, patientID uuid.UUID) (*Assignment, error) {
	a, err := r.scanAssignment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assignmentCols+` FROM bed_assignment WHERE patient_id = $1 AND released_at IS NULL`, patientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *wardRepoPG) ReleaseAssignment(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE bed_assignment SET released_at=$2 WHERE id = $1`, id, at)
	return err
}

// -- Occupancy --

func (r *wardRepoPG) WardOccupancy(ctx context.Context, wardID uuid.UUID) (*Occupancy, error) {
	occ := Occupancy{WardID: wardID}
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'occupied'),
			COUNT(*) FILTER (WHERE status = 'available'),
			COUNT(*) FILTER (WHERE status = 'maintenance')
		FROM bed WHERE ward_id = $1`, wardID).
		Scan(&occ.TotalBeds, &occ.Occupied, &occ.Available, &occ.Maintenance)
	if err != nil {
		return nil, err
	}
	return &occ, nil
}
