// Package driver runs an automaton at a human-visible cadence, writing one
// rendered row per generation.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Stepper is the part of a sim the terminal loop needs.
type Stepper interface {
	Render() string
	Step()
}

// Run writes the current row to w, then steps, once per interval. It stops
// after limit rows when limit is positive, and otherwise runs until ctx is
// done, returning ctx.Err(). A non-positive interval runs without pausing.
func Run(ctx context.Context, s Stepper, w io.Writer, interval time.Duration, limit int) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for written := 0; limit <= 0 || written < limit; written++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, s.Render()); err != nil {
			return fmt.Errorf("write generation %d: %w", written, err)
		}
		s.Step()
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
	return nil
}
