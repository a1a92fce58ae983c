// Package animtest provides a deterministic animation host for tests:
// a manually stepped frame clock with switchable mapped and enabled
// states.
package animtest

import (
	"time"

	"github.com/go-bismuth/bismuth/pkg/animation"
)

// Host is an animation.Host driven by hand instead of an event loop.
type Host struct {
	// Mapped reports whether the host exposes its frame clock.
	// An unmapped host sends played animations down the skip path.
	Mapped bool

	// Enabled is the animations-enabled policy returned to animations.
	Enabled bool

	clock *animation.FrameClock
}

// NewHost creates a mapped, enabled host with a fresh frame clock.
func NewHost() *Host {
	return &Host{
		Mapped:  true,
		Enabled: true,
		clock:   animation.NewFrameClock(),
	}
}

// FrameClock returns the host's clock, or nil while unmapped.
func (h *Host) FrameClock() *animation.FrameClock {
	if !h.Mapped {
		return nil
	}
	return h.clock
}

// AnimationsEnabled reports the Enabled flag.
func (h *Host) AnimationsEnabled() bool { return h.Enabled }

// Clock returns the underlying frame clock regardless of mapped state.
func (h *Host) Clock() *animation.FrameClock { return h.clock }

// Advance steps the clock forward by d in a single frame.
func (h *Host) Advance(d time.Duration) {
	h.clock.Step(h.clock.FrameTime() + d)
}

// Pump steps the clock forward by total in frame-sized increments,
// simulating a steady frame rate. A final partial frame lands exactly on
// total.
func (h *Host) Pump(total, frame time.Duration) {
	end := h.clock.FrameTime() + total
	for h.clock.FrameTime()+frame <= end {
		h.Advance(frame)
	}
	if h.clock.FrameTime() < end {
		h.clock.Step(end)
	}
}
