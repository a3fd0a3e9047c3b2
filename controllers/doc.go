// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package controllers contains the click handlers for the two pages.

# Controller Types

Each controller owns one page.Document and a client for one endpoint:

  - SortController: numbers-input → POST /counting-sort → sorted-output
  - ParityController: binary-input + parity-type → POST /parity →
    res-original, res-bit, res-transmitted, res-type

	ctrl, err := controllers.NewSortController(doc, client, reveal.New(100*time.Millisecond, 600*time.Millisecond))
	err = ctrl.Click(ctx)

# Click Flow

	reset regions → validate → disable button → POST → reveal steps → render → restore button

Validation failures are shown without touching the button or the
network. The button is disabled with a busy label ("Processing..." or
"Calculating...") for the request and the reveal, and restored by a
deferred call on every path. A click while the button is disabled
returns ErrBusy and changes nothing.

# Rendering

Results: sorted numbers joined with ", "; parity fields verbatim with
the mode upper-cased. Errors: the result region is hidden first, then
the message from Message(err) is shown. Steps are revealed only when the
reply has steps and the page has a steps container; the result region
appears after the last step.
*/
package controllers
