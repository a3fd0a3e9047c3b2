// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package reveal animates a step trace into a page list, one item at a
// time: "Step 1: ...", "Step 2: ...". Each item is appended hidden, shown
// after ShowDelay (100ms by default), and followed by StepDelay (600ms)
// before the next item starts. Steps never overlap.
package reveal
