package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/revivecare/revivecare/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("exercise session not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const sessionColumns = `
	id, patient_id, exercise_kind, session_date, target_reps,
	total_reps, excellent_reps, good_reps, partial_reps,
	completed, sample_log, created_at`

// FindOpen returns the single incomplete session for the given
// (patient, kind, day) triple, or ErrSessionNotFound.
func (r *Repo) FindOpen(ctx context.Context, patientID int, kind ExerciseKind, day time.Time) (_ *ExerciseSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.findopen")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))
	span.SetAttributes(attribute.String("exercise.kind", kind.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM exercise_session
			WHERE patient_id = $1 AND exercise_kind = $2 AND session_date = $3 AND NOT completed;`,
		patientID, kind, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(found) != 1 {
		return nil, ErrSessionNotFound
	}

	return &found[0], nil
}

// GetOrCreateOpen is the find-or-create primitive of the session resolver.
// Creation is conditioned on the absence of a matching open record via the
// partial unique index on (patient_id, exercise_kind, session_date) WHERE NOT
// completed: the conditional insert of two racing requests resolves to one
// surviving row, and the loser re-reads it.
func (r *Repo) GetOrCreateOpen(ctx context.Context, patientID int, kind ExerciseKind, day time.Time) (_ *ExerciseSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))
	span.SetAttributes(attribute.String("exercise.kind", kind.String()))

	session, err := r.FindOpen(ctx, patientID, kind, day)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise_session
				(patient_id, exercise_kind, session_date, target_reps, sample_log, created_at)
			VALUES ($1, $2, $3, $4, '[]'::jsonb, $5)
			ON CONFLICT (patient_id, exercise_kind, session_date) WHERE NOT completed
				DO NOTHING
			RETURNING `+sessionColumns+`;`,
		patientID, kind, day, kind.TargetReps(), time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	created, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(created) == 1 {
		span.SetAttributes(attribute.Int("session.id", created[0].ID))
		return &created[0], nil
	}

	// lost the creation race, the other request's row must be visible now
	return r.FindOpen(ctx, patientID, kind, day)
}

// ApplyUpdate overwrites the rep counters, appends one raw sample to the log
// and optionally marks the session completed, all in a single statement so the
// record never carries a counter update without its sample (and vice versa).
// A completed session is never matched: the resolver would have handed out a
// fresh open record instead.
func (r *Repo) ApplyUpdate(ctx context.Context, id int, update SessionUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.applyupdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))
	span.SetAttributes(attribute.Int("session.totalreps", update.TotalReps))

	sampleJson, err := json.Marshal(update.Sample)
	if err != nil {
		return fmt.Errorf("marshal sample: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_session
			SET total_reps = $2,
				excellent_reps = $3,
				good_reps = $4,
				sample_log = sample_log || $5::jsonb,
				completed = completed OR $6
			WHERE id = $1 AND NOT completed;`,
		id,
		update.TotalReps, update.ExcellentReps, update.GoodReps,
		sampleJson, update.Completed,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// History returns the patient's sessions created since the given time,
// newest first, at most limit rows.
func (r *Repo) History(ctx context.Context, patientID int, since time.Time, limit int) (_ []ExerciseSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM exercise_session
			WHERE patient_id = $1 AND session_date >= $2
			ORDER BY created_at DESC
			LIMIT $3;`,
		patientID, since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2sessions(rows)
}

// ListAll returns every session of the patient, newest first.
func (r *Repo) ListAll(ctx context.Context, patientID int) (_ []ExerciseSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM exercise_session
			WHERE patient_id = $1
			ORDER BY created_at DESC;`,
		patientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2sessions(rows)
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]ExerciseSession, error) {
	sessions := make([]ExerciseSession, 0)
	for rows.Next() {
		var s ExerciseSession
		var sampleLogBytes []byte
		if err := rows.Scan(
			&s.ID, &s.PatientID, &s.ExerciseKind, &s.Date, &s.TargetReps,
			&s.TotalReps, &s.ExcellentReps, &s.GoodReps, &s.PartialReps,
			&s.Completed, &sampleLogBytes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(sampleLogBytes) > 0 {
			if err := json.Unmarshal(sampleLogBytes, &s.SampleLog); err != nil {
				return nil, fmt.Errorf("unmarshal sample log for session %d: %w", s.ID, err)
			}
		}
		if s.SampleLog == nil {
			s.SampleLog = make([]Sample, 0)
		}

		sessions = append(sessions, s)
	}

	return sessions, nil
}
