package simulator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/coder/quartz"
)

// Stepper paces a game between rounds.
type Stepper interface {
	Wait(ctx context.Context) error
}

// NoPause runs rounds back to back.
type NoPause struct{}

func (NoPause) Wait(ctx context.Context) error {
	return ctx.Err()
}

// PromptStepper waits for the player to press return after every round.
type PromptStepper struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPromptStepper creates a stepper that prompts on out and reads lines from
// in. Pass the scanner already used for other prompts so buffered input is
// not lost.
func NewPromptStepper(in *bufio.Scanner, out io.Writer) *PromptStepper {
	return &PromptStepper{in: in, out: out}
}

// Wait blocks until a line is read. Closed input lets the game run on
// without further pauses.
func (p *PromptStepper) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprint(p.out, "<Type return to continue>")
	if !p.in.Scan() {
		return p.in.Err()
	}
	return nil
}

// DelayStepper sleeps for a fixed interval between rounds.
type DelayStepper struct {
	clock quartz.Clock
	delay time.Duration
}

// NewDelayStepper creates a stepper that waits delay on clock.
func NewDelayStepper(clock quartz.Clock, delay time.Duration) *DelayStepper {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &DelayStepper{clock: clock, delay: delay}
}

func (d *DelayStepper) Wait(ctx context.Context) error {
	if d.delay <= 0 {
		return ctx.Err()
	}

	fired := make(chan struct{})
	timer := d.clock.AfterFunc(d.delay, func() {
		close(fired)
	}, "stepper", "delay")
	defer timer.Stop()

	select {
	case <-fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
