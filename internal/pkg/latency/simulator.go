package latency

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Simulator stands in for a network round trip. Every facade operation
// passes through Wait before touching the store; once past it, the operation
// runs to completion with no abort path. Tests construct a zero-delay
// simulator (or a mock clock) to run synchronously.
type Simulator struct {
	clk   clock.Clock
	delay time.Duration
}

func New(clk clock.Clock, delay time.Duration) *Simulator {
	if clk == nil {
		clk = clock.New()
	}
	if delay < 0 {
		delay = 0
	}
	return &Simulator{clk: clk, delay: delay}
}

// None is the simulator tests use: no clock, no waiting.
func None() *Simulator {
	return &Simulator{clk: clock.New(), delay: 0}
}

func (s *Simulator) Wait(ctx context.Context) error {
	if s == nil || s.delay <= 0 {
		return ctx.Err()
	}

	t := s.clk.Timer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
