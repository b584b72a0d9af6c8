package trainings

import (
	"errors"
	"fmt"
)

// Workout type codes as emitted by the tracker hardware.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

// Expected parameter counts per workout type. Parameters are positional:
// action count and duration come first, followed by weight and the
// variant-specific fields.
const (
	swimmingParamCount      = 5 // action, duration, weight, pool length, lap count
	runningParamCount       = 3 // action, duration, weight
	sportsWalkingParamCount = 4 // action, duration, weight, height
)

var (
	// ErrUnknownTrainingType is returned for a workout type code that no
	// variant recognizes.
	ErrUnknownTrainingType = errors.New("unknown training type")

	// ErrBadPackage is returned when a sensor package carries the wrong
	// number of parameters for its workout type.
	ErrBadPackage = errors.New("malformed sensor package")
)

// ReadPackage decodes one sensor package into the matching workout variant.
// The data values bind positionally to the variant's constructor; the count
// is checked before construction so a short or oversized package fails
// cleanly instead of misbinding.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	switch workoutType {
	case CodeSwimming:
		if len(data) != swimmingParamCount {
			return nil, arityError(workoutType, swimmingParamCount, len(data))
		}
		return NewSwimming(int(data[0]), data[1], data[2], data[3], data[4]), nil
	case CodeRunning:
		if len(data) != runningParamCount {
			return nil, arityError(workoutType, runningParamCount, len(data))
		}
		return NewRunning(int(data[0]), data[1], data[2]), nil
	case CodeSportsWalking:
		if len(data) != sportsWalkingParamCount {
			return nil, arityError(workoutType, sportsWalkingParamCount, len(data))
		}
		return NewSportsWalking(int(data[0]), data[1], data[2], data[3]), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTrainingType, workoutType)
	}
}

func arityError(workoutType string, want, got int) error {
	return fmt.Errorf("%w: %s expects %d values, got %d", ErrBadPackage, workoutType, want, got)
}
