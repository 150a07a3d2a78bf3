package sessions

// ExerciseKind can be one of:
//   - bicep-curl
//   - shoulder-extension
//   - jumping-jacks
//   - arm-raises
type ExerciseKind string

const (
	KindBicepCurl         ExerciseKind = "bicep-curl"
	KindShoulderExtension ExerciseKind = "shoulder-extension"
	KindJumpingJacks      ExerciseKind = "jumping-jacks"
	KindArmRaises         ExerciseKind = "arm-raises"
)

func (k ExerciseKind) String() string {
	return string(k)
}

func (k ExerciseKind) IsValid() bool {
	switch k {
	case KindBicepCurl,
		KindShoulderExtension,
		KindJumpingJacks,
		KindArmRaises:
		return true
	default:
		return false
	}
}

// TargetReps is the per-session rep goal, fixed per exercise kind.
func (k ExerciseKind) TargetReps() int {
	switch k {
	case KindBicepCurl:
		return 10
	case KindShoulderExtension:
		return 12
	case KindJumpingJacks:
		return 20
	case KindArmRaises:
		return 15
	default:
		return 0
	}
}

// ParseExerciseKind maps a tracker-supplied exercise id to a kind.
// The mobile tracker sends "ar" as a short form of arm-raises.
func ParseExerciseKind(exerciseID string) (ExerciseKind, bool) {
	if exerciseID == "ar" {
		return KindArmRaises, true
	}
	kind := ExerciseKind(exerciseID)
	return kind, kind.IsValid()
}

type CatalogEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	TargetMuscles []string `json:"target_muscles"`
	Difficulty    string   `json:"difficulty"`
}

// Catalog returns the static list of supported rehabilitation exercises.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			ID:            KindShoulderExtension.String(),
			Name:          "Shoulder Extension",
			Description:   "Shoulder strengthening exercise",
			TargetMuscles: []string{"Shoulders", "Deltoids"},
			Difficulty:    "Beginner",
		},
		{
			ID:            KindArmRaises.String(),
			Name:          "Arm Raise",
			Description:   "Arm strengthening exercise",
			TargetMuscles: []string{"Arms", "Shoulders"},
			Difficulty:    "Beginner",
		},
		{
			ID:            KindBicepCurl.String(),
			Name:          "Bicep Curl",
			Description:   "Bicep strengthening exercise",
			TargetMuscles: []string{"Biceps", "Arms"},
			Difficulty:    "Beginner",
		},
		{
			ID:            KindJumpingJacks.String(),
			Name:          "Jumping Jacks",
			Description:   "Full body cardio exercise",
			TargetMuscles: []string{"Full Body"},
			Difficulty:    "Beginner",
		},
	}
}
