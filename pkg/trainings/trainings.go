// Package trainings computes workout summaries from raw fitness-tracker
// sensor data. Each supported workout type converts an action count (steps
// or strokes), a duration, and athlete parameters into distance, mean speed,
// and spent calories, and assembles them into a fixed-format report.
package trainings

// Conversion constants shared by every workout type.
const (
	lenStep = 0.65 // metres advanced per action (step)
	mInKm   = 1000 // metres in a kilometre
	minInHr = 60   // minutes in an hour
)

// Training is the capability every workout variant provides: the derived
// quantities of one recorded session. Implementations are immutable value
// types; all methods are pure functions of the construction parameters.
type Training interface {
	// Distance returns the covered distance in kilometres.
	Distance() float64

	// MeanSpeed returns the average speed over the full duration, in km/h.
	MeanSpeed() float64

	// SpentCalories returns the energy spent during the session, in kcal.
	SpentCalories() float64

	// Info assembles the computed summary into a report record.
	Info() InfoMessage
}

// sample carries the sensor fields common to every workout type: the raw
// action count, the session duration in hours, and the athlete's weight in
// kilograms. It supplies the default distance and mean-speed formulas but
// deliberately does not satisfy Training: spent calories have no default,
// so a bare sample can never reach the report pipeline.
type sample struct {
	action   int
	duration float64
	weight   float64
}

// Distance returns the covered distance in kilometres, assuming the default
// step length.
func (s sample) Distance() float64 {
	return float64(s.action) * lenStep / mInKm
}

// MeanSpeed returns the average speed in km/h. A zero duration is not
// guarded against and yields an IEEE-754 infinity.
func (s sample) MeanSpeed() float64 {
	return s.Distance() / s.duration
}
