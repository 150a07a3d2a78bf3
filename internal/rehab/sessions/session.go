package sessions

import "time"

// Sample is one real-time angle/rep/stage observation emitted by the
// client-side motion tracker.
type Sample struct {
	Time  time.Time `json:"time"`
	Angle float64   `json:"angle"`
	Stage string    `json:"stage"`
	Rep   int       `json:"rep"`
}

// ExerciseSession is one day's attempt record at one exercise kind for one
// patient. At most one incomplete session exists per (patient, kind, date);
// once completed the record is terminal and a fresh one is created for any
// further same-day activity.
type ExerciseSession struct {
	ID            int          `json:"id"`
	PatientID     int          `json:"patient_id"`
	ExerciseKind  ExerciseKind `json:"exercise_kind"`
	Date          time.Time    `json:"date"`
	TargetReps    int          `json:"target_reps"`
	TotalReps     int          `json:"total_reps"`
	ExcellentReps int          `json:"excellent_reps"`
	GoodReps      int          `json:"good_reps"`
	PartialReps   int          `json:"partial_reps"`
	Completed     bool         `json:"completed"`
	SampleLog     []Sample     `json:"sample_log"`
	CreatedAt     time.Time    `json:"created_at"`
}

// SessionUpdate carries the fields the mutator applies to an open session:
// the new cumulative rep count, the recomputed tier counts, one raw sample
// to append, and the terminal flag.
type SessionUpdate struct {
	TotalReps     int
	ExcellentReps int
	GoodReps      int
	Sample        Sample
	Completed     bool
}
