package app

import (
	"log"

	"ledray/internal/core"
	"ledray/internal/led"
	"ledray/internal/raycast"
	"ledray/internal/render"
	"ledray/internal/world"
)

const (
	moveSpeed = 0.05
	rotSpeed  = 0.05

	// shotRange is how far a shot can mark a wall impact.
	shotRange = 10
)

// Input is one tick's worth of polled controls.
type Input struct {
	TurnLeft    bool
	TurnRight   bool
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	Fire        bool
}

// FrameSender delivers one LED pixel buffer to the device. Implemented by
// wled.Client.
type FrameSender interface {
	SendFrame([]led.RGB) error
}

// StreamStats reports cumulative device delivery counters for the debug
// overlay. Implemented by wled.Client.
type StreamStats interface {
	Frames() int
	Drops() int
}

// Session runs the per-tick pipeline: pose update, raycast, composite, and
// the paced downsample/remap/send leg. It has no window dependency, so the
// whole pipeline is unit-testable headless.
type Session struct {
	grid *world.Grid
	pose world.Pose
	fx   render.EffectState

	caster *raycast.Caster
	comp   *render.Compositor
	frame  *render.Frame
	hits   []raycast.Hit

	mapper *led.Mapper
	sender FrameSender
	pacer  *core.Pacer
}

// NewSession wires the pipeline for the given level. mapper and sender may
// be nil to run without a device (local preview only).
func NewSession(lvl *world.Level, cfg *Config, mapper *led.Mapper, sender FrameSender) *Session {
	return &Session{
		grid:   lvl.Grid,
		pose:   lvl.Spawn,
		caster: raycast.New(float64(lvl.Grid.W + lvl.Grid.H)),
		comp:   render.NewCompositor(),
		frame:  render.NewFrame(cfg.RenderW, cfg.RenderH),
		hits:   make([]raycast.Hit, cfg.RenderW),
		mapper: mapper,
		sender: sender,
		pacer:  core.NewPacer(cfg.StreamInterval),
	}
}

// Frame exposes the current rendered frame for display.
func (s *Session) Frame() *render.Frame { return s.frame }

// Pose returns the current player pose.
func (s *Session) Pose() world.Pose { return s.pose }

// Tick advances the session by one frame: input-driven movement, effect
// timers, raycast, composite, and the throttled device send. Everything
// runs sequentially; a failed send is logged and dropped.
func (s *Session) Tick(in Input) {
	s.applyInput(in)
	s.fx.Decay()

	s.caster.CastAll(s.grid, s.pose, s.hits)
	s.comp.Render(s.frame, s.hits, &s.fx)

	s.stream()
}

func (s *Session) applyInput(in Input) {
	if in.TurnLeft {
		s.pose.Rotate(-rotSpeed)
	}
	if in.TurnRight {
		s.pose.Rotate(rotSpeed)
	}
	if in.Forward {
		s.pose.Move(s.grid, moveSpeed)
	}
	if in.Backward {
		s.pose.Move(s.grid, -moveSpeed)
	}
	if in.StrafeLeft {
		s.pose.Strafe(s.grid, -moveSpeed)
	}
	if in.StrafeRight {
		s.pose.Strafe(s.grid, moveSpeed)
	}
	if in.Fire {
		// A shot marks the wall at the screen center when one is in range.
		hit := s.caster.Cast(s.grid, s.pose, s.pose.Angle)
		s.fx.TriggerShot(s.frame.W/2, hit.Wall && hit.Dist < shotRange)
	}
}

// stream runs the LED leg when the pacer allows it. Frame drops are final:
// no retry, no queueing, the next tick simply tries again.
func (s *Session) stream() {
	if s.mapper == nil || s.sender == nil {
		return
	}
	if !s.pacer.Ready() {
		return
	}
	pixels := s.mapper.Map(s.frame.Img)
	if err := s.sender.SendFrame(pixels); err != nil {
		log.Printf("frame dropped: %v", err)
	}
}
