package trainings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoMessageString(t *testing.T) {
	tests := []struct {
		name string
		msg  InfoMessage
		want string
	}{
		{
			name: "pads every field to three decimals",
			msg: InfoMessage{
				TrainingType: "Running",
				Duration:     1,
				Distance:     9.7,
				Speed:        9.7,
				Calories:     100,
			},
			want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.700 км; Ср. скорость: 9.700 км/ч; Потрачено ккал: 100.000.",
		},
		{
			name: "rounds to the nearest millesimal",
			msg: InfoMessage{
				TrainingType: "Swimming",
				Duration:     1,
				Distance:     0.9936,
				Speed:        1,
				Calories:     336,
			},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.String())
		})
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name     string
		training Training
		want     InfoMessage
	}{
		{
			name:     "running",
			training: NewRunning(15000, 1, 75),
			want: InfoMessage{
				TrainingType: "Running",
				Duration:     1,
				Distance:     9.75,
				Speed:        9.75,
				Calories:     699.75,
			},
		},
		{
			name:     "sports walking",
			training: NewSportsWalking(9000, 1, 75, 180),
			want: InfoMessage{
				TrainingType: "SportsWalking",
				Duration:     1,
				Distance:     5.85,
				Speed:        5.85,
				Calories:     157.5,
			},
		},
		{
			name:     "swimming",
			training: NewSwimming(720, 1, 80, 25, 40),
			want: InfoMessage{
				TrainingType: "Swimming",
				Duration:     1,
				Distance:     0.9936,
				Speed:        1,
				Calories:     336,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.training.Info()
			assert.Equal(t, tt.want.TrainingType, got.TrainingType)
			assert.InDelta(t, tt.want.Duration, got.Duration, delta)
			assert.InDelta(t, tt.want.Distance, got.Distance, delta)
			assert.InDelta(t, tt.want.Speed, got.Speed, delta)
			assert.InDelta(t, tt.want.Calories, got.Calories, delta)
		})
	}
}

func TestInfoRendersFullReport(t *testing.T) {
	tr := NewRunning(15000, 1, 75)
	want := "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750."
	assert.Equal(t, want, tr.Info().String())
}
