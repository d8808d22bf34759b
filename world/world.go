// Package world runs the sandbox: it owns the ECS, the platforms and the
// single actor, and advances them once per host frame.
package world

import (
	"time"

	"github.com/automoto/spritesandbox/actor"
	"github.com/automoto/spritesandbox/assets"
	"github.com/automoto/spritesandbox/assets/animations"
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/input"
	"github.com/automoto/spritesandbox/systems"
	"github.com/automoto/spritesandbox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects the sprite and level for a World.
type Options struct {
	Meta      animations.Meta
	Catalog   animations.Catalog
	Atlas     *ebiten.Image // may be nil in tests
	Scale     float64
	Scrolling bool
	Store     *input.Store // created when nil
}

type World struct {
	ecs     *ecs.ECS
	opts    Options
	store   *input.Store
	running bool
}

func New(opts Options) *World {
	if opts.Store == nil {
		opts.Store = input.NewStore()
	}
	if opts.Scale <= 0 {
		opts.Scale = cfg.Mapper.DefaultScale
	}

	w := &World{opts: opts, store: opts.Store}
	w.configure()
	return w
}

func (w *World) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Simulation, in tick order
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateActor)
	ecs.AddSystem(systems.UpdateBounds)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawActor)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	w.ecs = ecs

	viewW := float64(cfg.World.ViewWidth)
	viewH := float64(cfg.World.ViewHeight)

	var lvl *assets.Level
	spaceW := cfg.World.ViewWidth
	if w.opts.Scrolling {
		lvl = assets.GetLevel(cfg.World.LevelName)
		spaceW = lvl.Width
	}

	factory.CreateSpace(w.ecs, spaceW, cfg.World.ViewHeight, cfg.World.CellSize, cfg.World.CellSize)
	factory.CreateLevel(w.ecs, lvl, viewW)
	factory.CreateClock(w.ecs)
	factory.CreateInput(w.ecs, w.store)
	factory.CreateCamera(w.ecs, viewW, viewH)

	if lvl == nil {
		factory.CreatePlatform(w.ecs, 0, cfg.World.GroundY, viewW, cfg.World.GroundHeight, cfg.GroundColor, 0)
		return
	}

	for i, p := range lvl.Platforms {
		if p.Floating {
			c := cfg.FloatingColor
			if p.HasColor {
				c = p.Color
			}
			factory.CreateFloatingPlatform(w.ecs, p.X, p.Y, p.W, p.H, p.Travel, c, i)
			continue
		}
		c := cfg.GroundColor
		if p.HasColor {
			c = p.Color
		}
		factory.CreatePlatform(w.ecs, p.X, p.Y, p.W, p.H, c, i)
	}
}

func (w *World) newActor(x, y float64) *actor.Actor {
	return actor.New(actor.Options{
		X:       x,
		Y:       y,
		Scale:   w.opts.Scale,
		Meta:    w.opts.Meta,
		Catalog: w.opts.Catalog,
		Atlas:   w.opts.Atlas,
		Physics: cfg.Physics,
	}, w.store)
}

// removeActor releases the current actor's input and deletes its entity.
func (w *World) removeActor() (*actor.Actor, bool) {
	entry, ok := components.Actor.First(w.ecs.World)
	if !ok {
		return nil, false
	}
	a := components.Actor.Get(entry).Actor
	if a != nil {
		a.Release()
	}
	w.ecs.World.Remove(entry.Entity())
	return a, a != nil
}

func (w *World) resetClock() {
	if entry, ok := components.Clock.First(w.ecs.World); ok {
		clock := components.Clock.Get(entry)
		clock.Started = false
		clock.DT = 0
	}
}

// Start spawns the actor above the spawn point if there is none and starts
// the loop. The first tick after Start has a zero delta.
func (w *World) Start() {
	if w.Actor() == nil {
		_, h := actor.Size(w.opts.Meta, w.opts.Scale)
		factory.CreateActor(w.ecs, w.newActor(cfg.World.SpawnX, -h))
	}
	w.resetClock()
	w.running = true
}

// Stop halts the loop and drops the actor. Calling it twice is harmless.
func (w *World) Stop() {
	w.running = false
	w.removeActor()
}

// UpdateAnimations swaps the actor for one built from catalog and scale.
// The old actor's input lease is released first; the new actor keeps the
// old X and stands on the ground line.
func (w *World) UpdateAnimations(catalog animations.Catalog, scale float64) {
	w.opts.Catalog = catalog
	if scale > 0 {
		w.opts.Scale = scale
	}

	old, ok := w.removeActor()
	_, h := actor.Size(w.opts.Meta, w.opts.Scale)
	if !ok {
		factory.CreateActor(w.ecs, w.newActor(cfg.World.SpawnX, -h))
		return
	}
	factory.CreateActor(w.ecs, w.newActor(old.X, cfg.World.GroundY-h))
}

// SetSheet replaces the atlas and frame layout used by the next actor.
func (w *World) SetSheet(meta animations.Meta, atlas *ebiten.Image) {
	w.opts.Meta = meta
	w.opts.Atlas = atlas
}

// PollInput reads the keyboard into the input store.
func (w *World) PollInput() {
	systems.UpdateInput(w.ecs)
}

// Tick advances the world to now. It does nothing while stopped.
func (w *World) Tick(now time.Time) {
	if !w.running {
		return
	}
	if entry, ok := components.Clock.First(w.ecs.World); ok {
		components.Clock.Get(entry).Now = now
	}
	w.ecs.Update()
}

func (w *World) Draw(dst *ebiten.Image) {
	w.ecs.Draw(dst)
}

// State returns the actor's motion state, or "" when there is no actor.
func (w *World) State() string {
	if a := w.Actor(); a != nil {
		return a.State.String()
	}
	return ""
}

func (w *World) Actor() *actor.Actor {
	return systems.GetActor(w.ecs)
}

func (w *World) CameraX() float64 {
	return systems.CameraX(w.ecs)
}

func (w *World) Running() bool {
	return w.running
}

func (w *World) Store() *input.Store {
	return w.store
}

// LastDelta returns the clamped delta of the latest tick in seconds.
func (w *World) LastDelta() float64 {
	return systems.DeltaTime(w.ecs)
}

func (w *World) platforms() []actor.Platform {
	return systems.Platforms(w.ecs)
}

// JustPressed reports an action that went down on the last PollInput.
func (w *World) JustPressed(action cfg.ActionID) bool {
	return systems.ActionJustPressed(w.ecs, action)
}
