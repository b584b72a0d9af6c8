package trainings

import "fmt"

// InfoMessage is the computed summary of one workout session. It is created
// once by a Training's Info method and never mutated afterwards.
type InfoMessage struct {
	TrainingType string  // display label of the workout variant
	Duration     float64 // session duration, hours
	Distance     float64 // covered distance, kilometres
	Speed        float64 // mean speed, km/h
	Calories     float64 // spent energy, kcal
}

// String renders the summary as the fixed single-line report. Every numeric
// field is printed with exactly three decimal places; the field order,
// literal text, and trailing period are part of the output contract.
func (m InfoMessage) String() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
