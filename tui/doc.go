// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tui renders a page.Document in the terminal.

Two renderers share one set of lipgloss Styles:

  - Printer: subscribes to a document and prints a line for each revealed
    step, then the result box or the error message. Used for one-shot
    runs and when stdout is not a terminal.
  - Model: a bubbletea program with a text input bound to the page's
    input element. Enter clicks the button, tab toggles the parity mode,
    esc quits. Document changes are coalesced into redraws.

	stop := tui.NewPrinter(os.Stdout, tui.DefaultStyles()).Attach(doc)
	defer stop()

	err := tui.Run(ctx, ctrl, tui.DefaultStyles())
*/
package tui
