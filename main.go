package main

import (
	"flag"
	"log"
	"os"

	"github.com/OpticalFlyer/ripplecompat/app"
	"github.com/OpticalFlyer/ripplecompat/config"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml layout (default: built-in demo)")
	verbose := flag.Bool("verbose", false, "enable logging")
	native := flag.String("native", "", "override native ripple support: auto, on or off")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(cfg, app.Options{Verbose: *verbose, Native: *native})
	if err != nil {
		log.Fatal(err)
	}

	if err := a.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
