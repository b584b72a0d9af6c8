package trainings

import "math"

// Calorie formula coefficients for sports walking.
const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

const labelSportsWalking = "SportsWalking"

// SportsWalking is a recorded walking session. Actions are steps; the
// athlete's height feeds the calorie formula.
type SportsWalking struct {
	sample
	height float64
}

// NewSportsWalking builds a walking session from an action count, a duration
// in hours, the athlete's weight in kilograms, and height in centimetres.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		sample: sample{action: action, duration: duration, weight: weight},
		height: height,
	}
}

// SpentCalories returns the energy spent while walking, in kcal.
//
// The squared mean speed is floor-divided by the height, reproducing the
// reference tracker firmware exactly: calories stay constant while the
// quotient's integer part does, and jump when it crosses a whole number.
func (w SportsWalking) SpentCalories() float64 {
	return (walkingCaloriesWeightMultiplier*w.weight + math.Floor(math.Pow(w.MeanSpeed(), 2)/w.height)*walkingSpeedHeightMultiplier*w.weight) * (w.duration * minInHr)
}

// Info assembles the session summary.
func (w SportsWalking) Info() InfoMessage {
	return InfoMessage{
		TrainingType: labelSportsWalking,
		Duration:     w.duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}
