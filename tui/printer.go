// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/danielhkuo/algoviz/page"
)

// Printer writes page changes as lines: each revealed step, then the
// result box or the error message
type Printer struct {
	w      io.Writer
	styles Styles
	mu     sync.Mutex
}

func NewPrinter(w io.Writer, styles Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Attach starts printing changes to doc and returns the func that stops it
func (p *Printer) Attach(doc *page.Document) func() {
	return doc.Subscribe(p.handle)
}

func (p *Printer) handle(ev page.Event) {
	if ev.Kind != page.EventShow {
		return
	}

	var out string
	switch {
	case ev.Target.HasClass(page.ClassStepItem):
		out = p.styles.renderStep(ev.Target.Text())
	case ev.Target.ID() == page.IDStepsContainer:
		out = p.styles.Title.Render(ev.Target.Label())
	case ev.Target.ID() == page.IDErrorMsg:
		out = p.styles.Error.Render(ev.Target.Text())
	case ev.Target.ID() == page.IDResultBox:
		out = p.styles.renderResult(ev.Target)
	default:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, out)
}
