package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vpetrenko/fittrack/internal/app"
	"github.com/vpetrenko/fittrack/internal/constants"
	"github.com/vpetrenko/fittrack/internal/log"
)

func main() {
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fittrack %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create and run the application
	application := app.New(log.GetSugaredLogger(), os.Stdout)
	if err := application.Run(); err != nil {
		log.Errorf("Processing error: %v", err)
		os.Exit(1)
	}
}
