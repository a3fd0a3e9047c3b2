// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reveal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/algoviz/page"
)

// snapshot is the list state seen at one sleep call
type snapshot struct {
	Delay   time.Duration
	Items   int
	Visible int
}

func recordingSleeper(list *page.Element, out *[]snapshot) Sleeper {
	return func(ctx context.Context, d time.Duration) error {
		s := snapshot{Delay: d}
		for _, item := range list.Children() {
			s.Items++
			if !item.Hidden() {
				s.Visible++
			}
		}
		*out = append(*out, s)
		return nil
	}
}

func TestReveal_Sequential(t *testing.T) {
	doc := page.NewSortPage(true)
	container := doc.ByID(page.IDStepsContainer)
	list := doc.ByID(page.IDStepsList)

	var seen []snapshot
	r := &Revealer{ShowDelay: 100 * time.Millisecond, StepDelay: 600 * time.Millisecond}
	r.Sleep = recordingSleeper(list, &seen)

	steps := []string{"Input Data: [3, 1, 2]", "Find range", "Final Sorted Result: [1, 2, 3]"}
	if err := r.Reveal(context.Background(), container, list, steps); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Item N is appended hidden, shown after its own delay, and the next
	// item only appears after the step delay
	expected := []snapshot{
		{100 * time.Millisecond, 1, 0},
		{600 * time.Millisecond, 1, 1},
		{100 * time.Millisecond, 2, 1},
		{600 * time.Millisecond, 2, 2},
		{100 * time.Millisecond, 3, 2},
		{600 * time.Millisecond, 3, 3},
	}
	if diff := cmp.Diff(expected, seen); diff != "" {
		t.Errorf("reveal sequence mismatch (-want +got):\n%s", diff)
	}

	if container.Hidden() {
		t.Error("Expected steps container to be shown")
	}

	var texts []string
	for _, item := range list.Children() {
		texts = append(texts, item.Text())
		if !item.HasClass(page.ClassStepItem) || !item.HasClass("show") {
			t.Errorf("Expected step-item and show classes on '%s'", item.Text())
		}
	}
	expectedTexts := []string{
		"Step 1: Input Data: [3, 1, 2]",
		"Step 2: Find range",
		"Step 3: Final Sorted Result: [1, 2, 3]",
	}
	if diff := cmp.Diff(expectedTexts, texts); diff != "" {
		t.Errorf("step texts mismatch (-want +got):\n%s", diff)
	}
}

func TestReveal_ClearsPreviousSteps(t *testing.T) {
	doc := page.NewParityPage(true)
	container := doc.ByID(page.IDStepsContainer)
	list := doc.ByID(page.IDStepsList)

	r := New(0, 0)
	r.Reveal(context.Background(), container, list, []string{"old 1", "old 2", "old 3"})
	r.Reveal(context.Background(), container, list, []string{"new"})

	children := list.Children()
	if len(children) != 1 {
		t.Fatalf("Expected 1 step after second reveal, got %d", len(children))
	}
	if children[0].Text() != "Step 1: new" {
		t.Errorf("Expected 'Step 1: new', got '%s'", children[0].Text())
	}
}

func TestReveal_Cancelled(t *testing.T) {
	doc := page.NewSortPage(true)
	container := doc.ByID(page.IDStepsContainer)
	list := doc.ByID(page.IDStepsList)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	r := &Revealer{Sleep: func(ctx context.Context, d time.Duration) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return ctx.Err()
	}}

	err := r.Reveal(ctx, container, list, []string{"a", "b", "c"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if n := len(list.Children()); n != 2 {
		t.Errorf("Expected reveal to stop at the second step, got %d items", n)
	}
}

func TestSleep(t *testing.T) {
	t.Run("waits", func(t *testing.T) {
		start := time.Now()
		if err := Sleep(context.Background(), 20*time.Millisecond); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if time.Since(start) < 20*time.Millisecond {
			t.Error("Expected Sleep to wait for the full duration")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestFormatStep(t *testing.T) {
	if got := FormatStep(0, "Count of '1' bits: 3"); got != "Step 1: Count of '1' bits: 3" {
		t.Errorf("Unexpected step text: %s", got)
	}
}
