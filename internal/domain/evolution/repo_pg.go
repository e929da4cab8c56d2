package evolution

import (
	"context"

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

type evolutionRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &evolutionRepoPG{pool: pool}
}

func (r *evolutionRepoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

const evolutionCols = `id, patient_id, note, weight_kg, height_cm, bmi,
	temperature_c, heart_rate, resp_rate, spo2, systolic_bp, diastolic_bp,
	recorded_at, created_at, updated_at`

func (r *evolutionRepoPG) scanEvolution(row pgx.Row) (*Evolution, error) {
	var e Evolution
	err := row.Scan(&e.ID, &e.PatientID, &e.Note, &e.WeightKg, &e.HeightCm, &e.BMI,
		&e.TemperatureC, &e.HeartRate, &e.RespRate, &e.SpO2, &e.SystolicBP, &e.DiastolicBP,
		&e.RecordedAt, &e.CreatedAt, &e.UpdatedAt)
	return &e, err
}

func (r *evolutionRepoPG) Create(ctx context.Context, e *Evolution) error {
	e.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO evolution (id, patient_id, note, weight_kg, height_cm, bmi,
			temperature_c, heart_rate, resp_rate, spo2, systolic_bp, diastolic_bp, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		e.ID, e.PatientID, e.Note, e.WeightKg, e.HeightCm, e.BMI,
		e.TemperatureC, e.HeartRate, e.RespRate, e.SpO2, e.SystolicBP, e.DiastolicBP, e.RecordedAt)
	return err
}

func (r *evolutionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Evolution, error) {
	return r.scanEvolution(r.conn(ctx).QueryRow(ctx, `SELECT `+evolutionCols+` FROM evolution WHERE id = $1`, id))
}

func (r *evolutionRepoPG) Update(ctx context.Context, e *Evolution) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE evolution SET note=$2, weight_kg=$3, height_cm=$4, bmi=$5,
			temperature_c=$6, heart_rate=$7, resp_rate=$8, spo2=$9,
			systolic_bp=$10, diastolic_bp=$11, updated_at=NOW()
		WHERE id = $1`,
		e.ID, e.Note, e.WeightKg, e.HeightCm, e.BMI,
		e.TemperatureC, e.HeartRate, e.RespRate, e.SpO2,
		e.SystolicBP, e.DiastolicBP)
	return err
}

func (r *evolutionRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM evolution WHERE id = $1`, id)
	return err
}

func (r *evolutionRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Evolution, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM evolution WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+evolutionCols+` FROM evolution WHERE patient_id = $1 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Evolution
	for rows.Next() {
		e, err := r.scanEvolution(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, nil
}
