package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/revivecare/revivecare/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=sessions_test

type analyzerRepo interface {
	History(ctx context.Context, patientID int, since time.Time, limit int) ([]ExerciseSession, error)
	ListAll(ctx context.Context, patientID int) ([]ExerciseSession, error)
}

// HistoryEntry is one session in the patient-facing history view, the rep
// counters enriched with a form score and the wall-clock span of the attempt.
// The raw sample log stays server-side.
type HistoryEntry struct {
	ID              int          `json:"id"`
	ExerciseKind    ExerciseKind `json:"exercise_kind"`
	Date            string       `json:"date"`
	TotalReps       int          `json:"total_reps"`
	TargetReps      int          `json:"target_reps"`
	ExcellentReps   int          `json:"excellent_reps"`
	GoodReps        int          `json:"good_reps"`
	PartialReps     int          `json:"partial_reps"`
	Completed       bool         `json:"completed"`
	DurationSeconds int          `json:"duration_seconds"`
	QualityScore    float64      `json:"quality_score"`
}

// PatientStats is the aggregate view shown on the patient dashboard.
type PatientStats struct {
	TotalSessions   int     `json:"total_sessions"`
	TotalReps       int     `json:"total_reps"`
	AvgQuality      float64 `json:"avg_quality"`
	BestSessionReps int     `json:"best_session_reps"`
}

const statsCacheTTLSeconds = 60

// Analyzer derives history and dashboard aggregates from raw session records.
// Stats are cached for a minute per patient: the dashboard polls while the
// patient exercises and the aggregates walk the full session list every time.
type Analyzer struct {
	repo  analyzerRepo
	cache *freecache.Cache
}

func NewAnalyzer(repo analyzerRepo, cacheSizeMegabytes int) *Analyzer {
	megabyte := 1024 * 1024
	return &Analyzer{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeMegabytes * megabyte),
	}
}

// History returns the patient's sessions from the last week, newest first,
// capped at limit, each enriched with quality score and duration.
func (a *Analyzer) History(ctx context.Context, patientID int, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.sessions.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))

	since := time.Now().AddDate(0, 0, -7)
	sessions, err := a.repo.History(ctx, patientID, since, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, HistoryEntry{
			ID:              s.ID,
			ExerciseKind:    s.ExerciseKind,
			Date:            s.Date.Format("2006-01-02"),
			TotalReps:       s.TotalReps,
			TargetReps:      s.TargetReps,
			ExcellentReps:   s.ExcellentReps,
			GoodReps:        s.GoodReps,
			PartialReps:     s.PartialReps,
			Completed:       s.Completed,
			DurationSeconds: durationSeconds(s),
			QualityScore:    QualityScore(s),
		})
	}

	return entries, nil
}

// Stats aggregates all sessions of the patient.
func (a *Analyzer) Stats(ctx context.Context, patientID int) (_ *PatientStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.sessions.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("patient.id", patientID))

	cacheKey := []byte(fmt.Sprintf("stats::%d", patientID))
	if cachedBytes, err := a.cache.Get(cacheKey); err == nil {
		var cached PatientStats
		if err := json.Unmarshal(cachedBytes, &cached); err == nil {
			return &cached, nil
		} else {
			log.Errorf("failed to unmarshal cached stats for patient %d: %s", patientID, err)
		}
	}

	sessions, err := a.repo.ListAll(ctx, patientID)
	if err != nil {
		return nil, err
	}

	stats := &PatientStats{
		TotalSessions: len(sessions),
	}

	var qualitySum float64
	var graded int
	for _, s := range sessions {
		stats.TotalReps += s.TotalReps
		if s.TotalReps > stats.BestSessionReps {
			stats.BestSessionReps = s.TotalReps
		}
		if s.TotalReps > 0 {
			qualitySum += QualityScore(s)
			graded++
		}
	}
	if graded > 0 {
		stats.AvgQuality = math.Round(qualitySum/float64(graded)*100) / 100
	}

	if statsBytes, err := json.Marshal(stats); err == nil {
		if err := a.cache.Set(cacheKey, statsBytes, statsCacheTTLSeconds); err != nil {
			log.Errorf("failed to cache stats for patient %d: %s", patientID, err)
		}
	}

	return stats, nil
}

// QualityScore grades a session from 0 to 100 by weighting the rep tiers,
// excellent at full value, good at three quarters, partial at half.
func QualityScore(s ExerciseSession) float64 {
	if s.TotalReps == 0 {
		return 0
	}
	weighted := float64(s.ExcellentReps) + 0.75*float64(s.GoodReps) + 0.5*float64(s.PartialReps)
	score := weighted / float64(s.TotalReps) * 100
	return math.Round(score*100) / 100
}

func durationSeconds(s ExerciseSession) int {
	if len(s.SampleLog) < 2 {
		return 0
	}
	first := s.SampleLog[0].Time
	last := s.SampleLog[len(s.SampleLog)-1].Time
	return int(last.Sub(first).Seconds())
}
