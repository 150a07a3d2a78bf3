package sessions

// TierCounts holds the per-quality rep counters of a session.
type TierCounts struct {
	Excellent int
	Good      int
	Partial   int
}

// angleGate holds the per-exercise form thresholds. For some exercises a
// smaller joint angle means better form (bicep curl: full contraction), for
// others a larger one does (raises/extensions: full range of motion).
type angleGate struct {
	excellent       float64
	good            float64
	smallerIsBetter bool
}

var angleGates = map[ExerciseKind]angleGate{
	KindBicepCurl:         {excellent: 45, good: 60, smallerIsBetter: true},
	KindShoulderExtension: {excellent: 80, good: 65},
	KindArmRaises:         {excellent: 85, good: 70},
}

func (g angleGate) isExcellent(angle float64) bool {
	if g.smallerIsBetter {
		return angle < g.excellent
	}
	return angle > g.excellent
}

func (g angleGate) isGood(angle float64) bool {
	if g.smallerIsBetter {
		return angle < g.good
	}
	return angle > g.good
}

// RecomputeTiers maps the latest sample onto new tier counts. It is a pure
// recomputation over the cumulative rep total, not a per-rep increment: the
// raised tier gets a new floor of totalReps minus the reps already attributed
// to the other two tiers. Counts only ratchet upwards, so replayed or
// out-of-order samples cannot shrink a tier once raised (a later sample with
// worse form keeps the old count too; kept on purpose, the upstream tracker
// relies on it). Jumping jacks have no angle gating and count every rep as
// excellent. Partial reps are never written here.
func RecomputeTiers(kind ExerciseKind, angle float64, totalReps int, current TierCounts) TierCounts {
	updated := current

	if kind == KindJumpingJacks {
		updated.Excellent = totalReps
		return updated
	}

	gate, ok := angleGates[kind]
	if !ok {
		return updated
	}

	switch {
	case gate.isExcellent(angle):
		updated.Excellent = max(current.Excellent, totalReps-(current.Good+current.Partial))
	case gate.isGood(angle):
		updated.Good = max(current.Good, totalReps-(current.Excellent+current.Partial))
	}

	return updated
}
