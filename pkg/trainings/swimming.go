package trainings

// Swimming-specific constants. A stroke advances the swimmer further than a
// step does, so the distance-per-action constant is overridden.
const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

const labelSwimming = "Swimming"

// Swimming is a recorded swimming session. Actions are strokes; the pool
// length and the lap count determine the mean speed instead of the stroke
// count.
type Swimming struct {
	sample
	lengthPool float64
	countPool  float64
}

// NewSwimming builds a swimming session from an action count, a duration in
// hours, the athlete's weight in kilograms, the pool length in metres, and
// the number of laps swum.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) Swimming {
	return Swimming{
		sample:     sample{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Distance returns the covered distance in kilometres, using the stroke
// length in place of the default step length.
func (s Swimming) Distance() float64 {
	return float64(s.action) * swimmingLenStep / mInKm
}

// MeanSpeed returns the average speed in km/h, derived from the pool length
// and lap count alone. The stroke count plays no part in it.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / mInKm / s.duration
}

// SpentCalories returns the energy spent while swimming, in kcal.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight
}

// Info assembles the session summary.
func (s Swimming) Info() InfoMessage {
	return InfoMessage{
		TrainingType: labelSwimming,
		Duration:     s.duration,
		Distance:     s.Distance(),
		Speed:        s.MeanSpeed(),
		Calories:     s.SpentCalories(),
	}
}
