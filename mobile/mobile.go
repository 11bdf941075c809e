//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
//	ebitenmobile bind -target android -tags mobile -javapkg net.opticalflyer.ripple -o build/ripple.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/OpticalFlyer/ripplecompat/app"
	"github.com/OpticalFlyer/ripplecompat/config"
)

func init() {
	cfg, err := config.Default()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.New(cfg, app.Options{Verbose: true})
	if err != nil {
		log.Fatalf("app: %v", err)
	}
	mobile.SetGame(a)
}

// Dummy is exported so ebitenmobile has something to bind.
func Dummy() {}
