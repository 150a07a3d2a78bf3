package patients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/revivecare/revivecare/internal/telemetry/tracing"
	"github.com/revivecare/revivecare/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientExists   = errors.New("patient with this email already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, patient Patient) (_ *Patient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.patients.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO patient (name, email, password, info, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		patient.Name, patient.Email, patient.Password, patient.Info, time.Now(),
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrPatientExists
		}
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	var id int
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan patient id: %w", err)
		}
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrPatientExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("patient.id", id))
	patient.ID = id
	return &patient, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Patient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.patients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", id))

	return r.getByField(ctx, "id", id)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Patient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.patients.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getByField(ctx, "email", email)
}

func (r *Repo) getByField(ctx context.Context, field string, value any) (*Patient, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, email, password, info, created_at
			FROM patient
			WHERE `+field+` = $1;`,
		value,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := rows2patients(rows)
	if err != nil {
		return nil, err
	}
	if len(found) != 1 {
		return nil, ErrPatientNotFound
	}

	return &found[0], nil
}

func (r *Repo) List(ctx context.Context) (_ []Patient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.patients.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, email, password, info, created_at
			FROM patient
			ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2patients(rows)
}

func rows2patients(rows pgx.Rows) ([]Patient, error) {
	patients := make([]Patient, 0)
	for rows.Next() {
		var p Patient
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Password, &p.Info, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, nil
}
