package trainings

// Calorie formula coefficients for running.
const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

const labelRunning = "Running"

// Running is a recorded running session. Actions are steps.
type Running struct {
	sample
}

// NewRunning builds a running session from an action count, a duration in
// hours, and the athlete's weight in kilograms.
func NewRunning(action int, duration, weight float64) Running {
	return Running{sample{action: action, duration: duration, weight: weight}}
}

// SpentCalories returns the energy spent while running, in kcal.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) * r.weight / mInKm * r.duration * minInHr
}

// Info assembles the session summary.
func (r Running) Info() InfoMessage {
	return InfoMessage{
		TrainingType: labelRunning,
		Duration:     r.duration,
		Distance:     r.Distance(),
		Speed:        r.MeanSpeed(),
		Calories:     r.SpentCalories(),
	}
}
