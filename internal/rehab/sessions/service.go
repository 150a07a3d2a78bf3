package sessions

import (
	"context"
	"time"

	"github.com/revivecare/revivecare/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	GetOrCreateOpen(ctx context.Context, patientID int, kind ExerciseKind, day time.Time) (*ExerciseSession, error)
	ApplyUpdate(ctx context.Context, id int, update SessionUpdate) error
}

// SampleUpdate is one incoming tracker observation: the exercise it belongs
// to, the cumulative rep count so far, the measured joint angle and movement
// stage, and whether the tracker considers the session finished.
type SampleUpdate struct {
	ExerciseID string
	Reps       int
	Angle      float64
	Stage      string
	Completed  bool
}

// UpdateService folds tracker samples into the patient's open session for the
// day: resolve (or create) the open record, regrade the rep tiers from the
// sample's angle, then persist counters, sample and completion in one go.
type UpdateService struct {
	repo sessionsRepo
}

func NewUpdateService(repo sessionsRepo) *UpdateService {
	return &UpdateService{
		repo: repo,
	}
}

// ProcessSample applies one tracker sample and returns the cumulative rep
// count. An unrecognized exercise id is acknowledged and dropped: older
// tracker builds send ids for unsupported exercises and erroring on them
// would abort the whole client session.
func (s *UpdateService) ProcessSample(ctx context.Context, patientID int, update SampleUpdate) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.processsample")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))
	span.SetAttributes(attribute.String("exercise.id", update.ExerciseID))

	kind, ok := ParseExerciseKind(update.ExerciseID)
	if !ok {
		log.Warnf("session update for patient %d: unknown exercise id %q, ignoring", patientID, update.ExerciseID)
		return update.Reps, nil
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	session, err := s.repo.GetOrCreateOpen(ctx, patientID, kind, day)
	if err != nil {
		return 0, err
	}

	tiers := RecomputeTiers(kind, update.Angle, update.Reps, TierCounts{
		Excellent: session.ExcellentReps,
		Good:      session.GoodReps,
		Partial:   session.PartialReps,
	})

	if err := s.repo.ApplyUpdate(ctx, session.ID, SessionUpdate{
		TotalReps:     update.Reps,
		ExcellentReps: tiers.Excellent,
		GoodReps:      tiers.Good,
		Sample: Sample{
			Time:  now,
			Angle: update.Angle,
			Stage: update.Stage,
			Rep:   update.Reps,
		},
		Completed: update.Completed,
	}); err != nil {
		return 0, err
	}

	return update.Reps, nil
}
