// Package actor implements the kinematic platformer character: input-driven
// velocity, gravity, axis-separated collision against platforms, and the
// motion state that selects the sprite animation.
package actor

import (
	"image/color"
	"math"

	"github.com/automoto/spritesandbox/assets/animations"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/input"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Platform is a static rectangle the actor collides with.
type Platform struct {
	X, Y, W, H float64
	Color      color.RGBA
}

func (p Platform) Rect() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Options configures a new Actor.
type Options struct {
	X, Y    float64
	Scale   float64
	Meta    animations.Meta
	Catalog animations.Catalog
	Atlas   *ebiten.Image // may be nil
	Physics cfg.PhysicsConfig
}

type Actor struct {
	X, Y       float64 // top-left
	W, H       float64
	VX, VY     float64
	Grounded   bool
	State      animations.Name
	FacingLeft bool
	Scale      float64

	physics cfg.PhysicsConfig
	catalog animations.Catalog
	sprite  *animations.Player
	lease   *input.Lease
}

// New builds an actor that reads input through a lease on store. The caller
// owns the actor and must call Release before dropping it.
func New(opts Options, store *input.Store) *Actor {
	w, h := Size(opts.Meta, opts.Scale)
	a := &Actor{
		X:       opts.X,
		Y:       opts.Y,
		W:       w,
		H:       h,
		State:   animations.Idle,
		Scale:   opts.Scale,
		physics: opts.Physics,
		catalog: opts.Catalog,
		sprite:  animations.NewPlayer(opts.Meta, opts.Catalog, opts.Atlas),
		lease:   store.Acquire(),
	}
	return a
}

// Size returns the actor's collision size for a frame size and scale.
func Size(meta animations.Meta, scale float64) (w, h float64) {
	return math.Round(float64(meta.FrameWidth) * scale), math.Round(float64(meta.FrameHeight) * scale)
}

// Update advances the actor by dt seconds against platforms, in order.
func (a *Actor) Update(dt float64, platforms []Platform) {
	in := a.lease.Snapshot()

	speed := a.physics.WalkSpeed
	if in.Fast {
		speed = a.physics.RunSpeed
	}
	switch {
	case in.Left:
		a.VX = -speed
		a.FacingLeft = true
	case in.Right:
		a.VX = speed
		a.FacingLeft = false
	default:
		a.VX = 0
	}

	if in.Jump && a.Grounded {
		a.VY = a.physics.JumpImpulse
		a.Grounded = false
	}

	a.VY += a.physics.Gravity * dt

	a.X += a.VX * dt
	a.resolveX(platforms)

	a.Y += a.VY * dt
	a.Grounded = false
	a.resolveY(platforms)

	a.State = deriveState(motion{
		grounded: a.Grounded,
		crouch:   in.Crouch,
		fast:     in.Fast,
		vx:       a.VX,
	}, a.catalog)
	a.sprite.SetAnimation(a.State)
	a.sprite.FlipX = a.FacingLeft
	a.sprite.Update(dt)
}

func (a *Actor) Rect() gamemath.Rect {
	return gamemath.Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// Sprite returns the actor's animation player.
func (a *Actor) Sprite() *animations.Player {
	return a.sprite
}

// Release gives up the actor's input lease. The actor reads no input after.
func (a *Actor) Release() {
	a.lease.Release()
}

// Released reports whether the input lease has been given up.
func (a *Actor) Released() bool {
	return a.lease.Released()
}

// Draw renders the sprite at the actor's world position shifted by cameraX.
func (a *Actor) Draw(dst *ebiten.Image, cameraX float64) {
	a.sprite.Draw(dst, a.X-cameraX, a.Y, a.Scale)
}
