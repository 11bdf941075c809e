// Package app wraps the ripple demo as an ebiten.Game so the desktop entry
// point and the mobile binding share it.
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/ripplecompat/anim"
	"github.com/OpticalFlyer/ripplecompat/config"
	"github.com/OpticalFlyer/ripplecompat/ripple"
	"github.com/OpticalFlyer/ripplecompat/ui"
)

// Options controls how the app starts.
type Options struct {
	// Verbose enables log output.
	Verbose bool
	// Native overrides the config's nativeRipple setting when not empty.
	Native string
}

// App implements ebiten.Game.
type App struct {
	cfg      *config.Config
	platform ripple.Platform

	loop    *anim.Loop
	ui      *ui.Controller
	tracker ui.Tracker

	debugMode bool
}

// New builds the demo described by cfg.
func New(cfg *config.Config, opts Options) (*App, error) {
	native := cfg.NativeRipple
	if opts.Native != "" {
		native = opts.Native
	}
	platform, err := resolvePlatform(native)
	if err != nil {
		return nil, err
	}

	if !opts.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	log.Printf("[App] native ripple available: %v", platform.NativeRipple)

	a := &App{
		cfg:      cfg,
		platform: platform,
		loop:     anim.NewLoop(nil),
		ui:       ui.NewController(),
	}
	for _, vc := range cfg.Views {
		a.ui.Add(a.buildView(vc))
	}
	log.Printf("[App] built %d views", len(cfg.Views))
	return a, nil
}

func resolvePlatform(native string) (ripple.Platform, error) {
	switch native {
	case config.NativeAuto:
		return ripple.Platform{NativeRipple: nativeRippleAvailable}, nil
	case config.NativeOn:
		return ripple.Platform{NativeRipple: true}, nil
	case config.NativeOff:
		return ripple.Platform{NativeRipple: false}, nil
	}
	return ripple.Platform{}, fmt.Errorf("unknown native ripple setting %q", native)
}

func (a *App) buildView(vc config.ViewConfig) *ui.View {
	label := vc.Label
	v := ui.NewView(vc.X, vc.Y, vc.Width, vc.Height, label, func() {
		log.Printf("[App] clicked %q", label)
	})
	v.SetPadding(ui.Padding{
		Left:   vc.Padding.Left,
		Top:    vc.Padding.Top,
		Right:  vc.Padding.Right,
		Bottom: vc.Padding.Bottom,
	})
	bg := vc.Background
	v.SetBackground(ui.NewButtonBackground(bg.Normal, bg.Hovered, bg.Pressed, bg.Disabled))
	v.SetEnabled(!vc.Disabled)

	switch vc.Ripple {
	case config.RippleCenter:
		ripple.CreateCenterRipple(a.loop, v, vc.Color)
	case config.RippleCompat:
		ripple.CreateRippleCompat(a.loop, v, vc.Color)
	case config.RippleAuto:
		ripple.CreateRipple(a.loop, a.platform, v, vc.Color)
	}
	return v
}

// Controller returns the UI controller.
func (a *App) Controller() *ui.Controller {
	return a.ui
}

// Platform returns the resolved platform capabilities.
func (a *App) Platform() ripple.Platform {
	return a.platform
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debugMode = !a.debugMode
	}

	if ev, ok := a.tracker.Poll(); ok {
		a.ui.Dispatch(ev)
	}
	if !a.ui.IsInteractingWithUI() {
		x, y := ebiten.CursorPosition()
		a.ui.UpdateHover(float64(x), float64(y))
	}

	a.loop.Update()
	return a.ui.Update()
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.cfg.Window.Background)
	a.ui.Draw(screen)

	if a.debugMode {
		a.ui.ShowDebugInfo(screen, fmt.Sprintf("Animators: %d\nNative ripple: %v",
			a.loop.Len(), a.platform.NativeRipple))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Run opens the window and blocks until it closes.
func (a *App) Run() error {
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(a)
}
