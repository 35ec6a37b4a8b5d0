// Package app wires the physics provider, the per-frame consumers, the page
// choreographer and the terminal into one running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jagjit/cosmos-folio/audio"
	"github.com/jagjit/cosmos-folio/config"
	"github.com/jagjit/cosmos-folio/content"
	"github.com/jagjit/cosmos-folio/engine"
	"github.com/jagjit/cosmos-folio/input"
	"github.com/jagjit/cosmos-folio/parameter"
	"github.com/jagjit/cosmos-folio/physics"
	"github.com/jagjit/cosmos-folio/render"
	"github.com/jagjit/cosmos-folio/route"
	"github.com/jagjit/cosmos-folio/status"
	"github.com/jagjit/cosmos-folio/system"
	"github.com/jagjit/cosmos-folio/transition"
	"github.com/jagjit/cosmos-folio/vmath"
)

// App owns every subsystem for one mount of the physics provider
// All methods except New run on the frame loop goroutine
type App struct {
	cfg    config.Config
	screen tcell.Screen
	reg    *status.Registry

	provider  *physics.Provider
	source    *physics.VelocitySource
	scheduler *engine.Scheduler
	router    *route.Router
	pages     *content.Manager
	hero      content.Hero

	rings   []*system.OrbitSystem
	glitch  *system.GlitchSystem
	glows   []*system.GlowSystem
	distort *system.DistortionSystem
	twinkle *system.TwinkleSystem
	hint    *system.HintSystem
	choreo  *transition.Choreographer

	renderer *render.Renderer
	input    *input.Machine
	sound    *audio.SoundManager

	showHUD   bool
	hoverRing int
	closed    bool
}

// New mounts the provider and registers consumers in tick order
// Audio failure is logged and the app continues silent
func New(cfg config.Config, screen tcell.Screen) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pages := content.NewManager(cfg.ContentDir)
	if err := pages.Load(); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	provider, err := physics.NewProvider(cfg.Physics())
	if err != nil {
		return nil, err
	}
	router, err := route.NewRouter(cfg.Route)
	if err != nil {
		return nil, err
	}

	var rng vmath.Rand
	if cfg.Seed == 0 {
		rng = vmath.NewTimeSeededRand()
	} else {
		rng = vmath.NewFastRand(cfg.Seed)
	}

	reg := status.NewRegistry()
	provider.Mount()

	a := &App{
		cfg:       cfg,
		screen:    screen,
		reg:       reg,
		provider:  provider,
		source:    provider.MustSource(),
		scheduler: engine.NewScheduler(provider, reg),
		router:    router,
		pages:     pages,
		hero:      content.DefaultHero(),
		renderer:  render.NewRenderer(screen),
		input:     input.NewMachine(),
		sound:     audio.NewSoundManager(reg),
		showHUD:   cfg.HUD,
		hoverRing: -1,
	}

	if err := a.buildConsumers(rng); err != nil {
		a.Close()
		return nil, err
	}

	router.Subscribe(func(from, to string) {
		for _, g := range a.glows {
			g.SetRoute(to)
		}
		a.twinkle.SetRoute(to)
		slog.Info("route requested", "from", from, "to", to)
	})
	for _, g := range a.glows {
		g.SetRoute(router.Current())
	}
	a.twinkle.SetRoute(router.Current())

	a.glitch.OnPassive(func(int) { a.sound.PlayGlitchTick() })

	if cfg.Audio {
		if err := a.sound.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			a.sound.StartHum()
		}
	}

	slog.Info("app mounted",
		"route", router.Current(),
		"fps", cfg.FPS,
		"consumers", a.scheduler.Consumers())
	return a, nil
}

func (a *App) buildConsumers(rng vmath.Rand) error {
	rings := content.DefaultRings()
	inner, err := system.NewOrbitSystem("orbit.inner", system.OrbitConfig{
		Radius:       parameter.OrbitInnerRadius,
		BaseDuration: parameter.OrbitInnerDuration,
		Side:         system.SideLeft,
		Icons:        rings.Inner,
	})
	if err != nil {
		return err
	}
	outer, err := system.NewOrbitSystem("orbit.outer", system.OrbitConfig{
		Radius:       parameter.OrbitOuterRadius,
		BaseDuration: parameter.OrbitOuterDuration,
		Reverse:      true,
		Side:         system.SideLeft,
		Icons:        rings.Outer,
	})
	if err != nil {
		return err
	}
	a.rings = []*system.OrbitSystem{inner, outer}

	a.glitch = system.NewGlitchSystem("glitch", system.GlitchConfig{
		Text: a.hero.Name,
		Rand: rng,
	}, a.scheduler, a.scheduler.Energy(), a.reg)

	a.glows = []*system.GlowSystem{
		system.NewGlowSystem("glow.left", system.SideLeft, "orange"),
		system.NewGlowSystem("glow.right", system.SideRight, "cyan"),
	}
	a.distort = system.NewDistortionSystem("distortion", int64(rng.Intn(1<<31)), a.reg)
	a.twinkle = system.NewTwinkleSystem("twinkle", parameter.TwinkleCount, rng)
	a.hint = system.NewHintSystem("hint")
	a.choreo = transition.NewChoreographer(a.router, a.pages.ChildCount, a.reg)

	for _, r := range a.rings {
		a.scheduler.Add(r)
	}
	a.scheduler.Add(a.glitch)
	for _, g := range a.glows {
		a.scheduler.Add(g)
	}
	a.scheduler.Add(a.distort)
	a.scheduler.Add(a.twinkle)
	a.scheduler.Add(a.hint)
	a.scheduler.Add(a.choreo)
	return nil
}

// Run drives frames until ctx is cancelled, events closes, or the user quits
func (a *App) Run(ctx context.Context, events <-chan tcell.Event) error {
	defer a.Close()

	loop := engine.NewLoop[tcell.Event](a.cfg.FPS, nil)
	a.Frame(0)
	err := loop.Run(ctx, events, a.HandleEvent, a.Frame)
	slog.Info("app stopped", "frames", loop.Frames())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// HandleEvent applies one terminal event, false stops the loop
func (a *App) HandleEvent(ev tcell.Event) bool {
	in := a.input.Process(ev)
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.renderer.Resize()
	case input.IntentToggleHUD:
		a.showHUD = !a.showHUD
	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		slog.Debug("audio mute toggled", "muted", muted)
	case input.IntentScroll:
		a.hint.Observe(in.Delta)
		a.source.Accumulate(in.Delta)
	case input.IntentNavigate:
		a.navigate(in.Route)
	case input.IntentNextRoute:
		a.navigate(a.nextRoute())
	case input.IntentHover:
		a.hover(in.X, in.Y)
	case input.IntentClick:
		if hit := a.renderer.HitTest(in.X, in.Y); hit.Kind == render.HitNav {
			a.navigate(hit.Route)
		}
	}
	return true
}

func (a *App) navigate(path string) {
	if err := a.choreo.Navigate(path); err != nil {
		slog.Warn("navigation rejected", "route", path, "error", err)
		return
	}
	a.leaveHover()
}

// nextRoute cycles from the route the user is heading to, which the router already holds
func (a *App) nextRoute() string {
	return a.router.Next()
}

func (a *App) hover(x, y int) {
	hit := a.renderer.HitTest(x, y)
	if hit.Kind != render.HitIcon || hit.Ring < 0 || hit.Ring >= len(a.rings) {
		a.leaveHover()
		return
	}
	if a.hoverRing >= 0 && a.hoverRing != hit.Ring {
		a.rings[a.hoverRing].HoverLeave()
	}
	if a.rings[hit.Ring].HoverEnter(hit.Index) {
		a.hoverRing = hit.Ring
	}
}

func (a *App) leaveHover() {
	if a.hoverRing >= 0 {
		a.rings[a.hoverRing].HoverLeave()
		a.hoverRing = -1
	}
}

// Frame steps the scheduler by dt and draws the result
func (a *App) Frame(dt time.Duration) {
	if a.closed {
		return
	}
	a.scheduler.Step(dt)
	a.renderer.Draw(a.Scene())
}

// Scene snapshots every consumer for the renderer
func (a *App) Scene() *render.Scene {
	page := a.choreo.Frame()
	s := &render.Scene{
		Rings:   make([]system.OrbitFrame, len(a.rings)),
		Glows:   make([]system.GlowFrame, len(a.glows)),
		Twinkle: a.twinkle.Frame(),
		Hint:    a.hint.Frame(),
		Glitch:  a.glitch.Slots(),
		Distort: a.distort,
		Page:    page,
		Content: a.pages.Page(page.Route),
		Hero:    a.hero,
		Muted:   a.sound.Muted(),
	}
	for i, r := range a.rings {
		s.Rings[i] = r.Frame()
	}
	for i, g := range a.glows {
		s.Glows[i] = g.Frame()
	}
	if a.showHUD {
		s.HUD = a.reg.Snapshot()
	}
	return s
}

// Close detaches consumers, unmounts the provider and releases audio, repeat calls are no-ops
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.scheduler.Detach()
	a.provider.Unmount()
	a.sound.Cleanup()
}

// Energy reads the published energy, valid until Close
func (a *App) Energy() float64 { return a.scheduler.Energy().Get() }

func (a *App) Router() *route.Router                    { return a.router }
func (a *App) Choreographer() *transition.Choreographer { return a.choreo }
func (a *App) Renderer() *render.Renderer               { return a.renderer }
func (a *App) Registry() *status.Registry               { return a.reg }
