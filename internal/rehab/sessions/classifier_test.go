package sessions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revivecare/revivecare/internal/rehab/sessions"
)

func TestRecomputeTiers_BicepCurlBoundaries(t *testing.T) {
	testCases := []struct {
		name     string
		angle    float64
		total    int
		current  sessions.TierCounts
		expected sessions.TierCounts
	}{
		{
			name:     "deep curl is excellent",
			angle:    44.9,
			total:    5,
			current:  sessions.TierCounts{},
			expected: sessions.TierCounts{Excellent: 5},
		},
		{
			name:     "exactly 45 is not excellent, still good",
			angle:    45,
			total:    5,
			current:  sessions.TierCounts{},
			expected: sessions.TierCounts{Good: 5},
		},
		{
			name:     "exactly 60 grades nothing",
			angle:    60,
			total:    5,
			current:  sessions.TierCounts{Excellent: 2},
			expected: sessions.TierCounts{Excellent: 2},
		},
		{
			name:     "59.9 is good",
			angle:    59.9,
			total:    5,
			current:  sessions.TierCounts{Excellent: 2},
			expected: sessions.TierCounts{Excellent: 2, Good: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sessions.RecomputeTiers(sessions.KindBicepCurl, tc.angle, tc.total, tc.current)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRecomputeTiers_LargerAngleIsBetter(t *testing.T) {
	// shoulder extension rewards range of motion
	got := sessions.RecomputeTiers(sessions.KindShoulderExtension, 81, 4, sessions.TierCounts{})
	assert.Equal(t, sessions.TierCounts{Excellent: 4}, got)

	got = sessions.RecomputeTiers(sessions.KindShoulderExtension, 80, 4, sessions.TierCounts{})
	assert.Equal(t, sessions.TierCounts{Good: 4}, got)

	got = sessions.RecomputeTiers(sessions.KindShoulderExtension, 65, 4, sessions.TierCounts{})
	assert.Equal(t, sessions.TierCounts{}, got)

	got = sessions.RecomputeTiers(sessions.KindArmRaises, 86, 3, sessions.TierCounts{})
	assert.Equal(t, sessions.TierCounts{Excellent: 3}, got)

	got = sessions.RecomputeTiers(sessions.KindArmRaises, 71, 3, sessions.TierCounts{Excellent: 1})
	assert.Equal(t, sessions.TierCounts{Excellent: 1, Good: 2}, got)
}

func TestRecomputeTiers_JumpingJacksCountEverythingAsExcellent(t *testing.T) {
	got := sessions.RecomputeTiers(sessions.KindJumpingJacks, 0, 7, sessions.TierCounts{Good: 2})
	assert.Equal(t, sessions.TierCounts{Excellent: 7, Good: 2}, got)

	// no max guard here, the count follows the tracker's total directly
	got = sessions.RecomputeTiers(sessions.KindJumpingJacks, 0, 3, sessions.TierCounts{Excellent: 7})
	assert.Equal(t, sessions.TierCounts{Excellent: 3}, got)
}

func TestRecomputeTiers_RatchetNeverShrinks(t *testing.T) {
	// an excellent count already above the new floor stays put
	current := sessions.TierCounts{Excellent: 6, Good: 2}
	got := sessions.RecomputeTiers(sessions.KindBicepCurl, 30, 7, current)
	assert.Equal(t, sessions.TierCounts{Excellent: 6, Good: 2}, got)

	// replayed sample with a lower total cannot lower the counts
	got = sessions.RecomputeTiers(sessions.KindBicepCurl, 30, 3, current)
	assert.Equal(t, sessions.TierCounts{Excellent: 6, Good: 2}, got)
}

func TestRecomputeTiers_FloorSubtractsOtherTiers(t *testing.T) {
	// 10 total, 4 already good and 1 partial, excellent floors at 5
	current := sessions.TierCounts{Excellent: 2, Good: 4, Partial: 1}
	got := sessions.RecomputeTiers(sessions.KindBicepCurl, 40, 10, current)
	assert.Equal(t, sessions.TierCounts{Excellent: 5, Good: 4, Partial: 1}, got)

	// symmetric for good
	got = sessions.RecomputeTiers(sessions.KindBicepCurl, 50, 10, current)
	assert.Equal(t, sessions.TierCounts{Excellent: 2, Good: 7, Partial: 1}, got)
}

func TestRecomputeTiers_PartialNeverWritten(t *testing.T) {
	for _, kind := range []sessions.ExerciseKind{
		sessions.KindBicepCurl,
		sessions.KindShoulderExtension,
		sessions.KindJumpingJacks,
		sessions.KindArmRaises,
	} {
		got := sessions.RecomputeTiers(kind, 100, 10, sessions.TierCounts{})
		assert.Zero(t, got.Partial, "kind %s", kind)
	}
}
