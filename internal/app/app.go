// Package app runs the fitness tracker pipeline: it decodes the simulated
// sensor packages and writes one workout summary per line.
package app

import (
	"fmt"
	"io"

	"github.com/vpetrenko/fittrack/pkg/trainings"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	logger *zap.SugaredLogger
	out    io.Writer
}

// New creates a new application instance writing workout reports to out.
func New(logger *zap.SugaredLogger, out io.Writer) *App {
	return &App{
		logger: logger,
		out:    out,
	}
}

// sensorPackage is one raw tracker transmission: a workout type code plus the
// positional sensor values recorded for that workout.
type sensorPackage struct {
	workoutType string
	data        []float64
}

// sensorPackages simulates a day's worth of tracker transmissions.
var sensorPackages = []sensorPackage{
	{trainings.CodeSwimming, []float64{720, 1, 80, 25, 40}},
	{trainings.CodeRunning, []float64{15000, 1, 75}},
	{trainings.CodeSportsWalking, []float64{9000, 1, 75, 180}},
}

// Run processes the simulated sensor batch. A package that fails to decode
// is logged and skipped, so one bad transmission never suppresses the
// remaining reports; the accumulated decode errors are returned once the
// whole batch has been attempted.
func (a *App) Run() error {
	return a.process(sensorPackages)
}

func (a *App) process(packages []sensorPackage) error {
	a.logger.Debugf("processing %d sensor packages", len(packages))

	var errs error
	for _, pkg := range packages {
		training, err := trainings.ReadPackage(pkg.workoutType, pkg.data)
		if err != nil {
			a.logger.Errorw("skipping sensor package", "type", pkg.workoutType, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		fmt.Fprintln(a.out, training.Info())
	}

	return errs
}
