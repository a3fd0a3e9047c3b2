// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reveal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/algoviz/page"
)

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real-time Sleeper
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Revealer appends steps to a list one at a time
type Revealer struct {
	ShowDelay time.Duration
	StepDelay time.Duration
	Sleep     Sleeper
}

// New returns a Revealer with the given timing that sleeps in real time
func New(showDelay, stepDelay time.Duration) *Revealer {
	return &Revealer{ShowDelay: showDelay, StepDelay: stepDelay, Sleep: Sleep}
}

// FormatStep renders the text of step i (0-based)
func FormatStep(i int, text string) string {
	return fmt.Sprintf("Step %d: %s", i+1, text)
}

// Reveal shows container, empties list, then for each step appends a
// hidden item, waits ShowDelay, shows it, and waits StepDelay before the
// next one. It returns early with ctx's error if ctx is done.
func (r *Revealer) Reveal(ctx context.Context, container, list *page.Element, steps []string) error {
	sleep := r.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	container.Show()
	list.Clear()

	for i, step := range steps {
		item := list.Document().CreateElement("div", page.ClassStepItem)
		item.SetText(FormatStep(i, step))
		item.Hide()
		list.Append(item)

		if err := sleep(ctx, r.ShowDelay); err != nil {
			slog.Debug("step reveal interrupted", "step", i+1, "error", err)
			return err
		}
		item.AddClass("show")
		item.Show()

		if err := sleep(ctx, r.StepDelay); err != nil {
			slog.Debug("step reveal interrupted", "step", i+1, "error", err)
			return err
		}
	}
	return nil
}
