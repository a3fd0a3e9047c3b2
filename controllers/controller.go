// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/algoviz/dispatch"
	"github.com/danielhkuo/algoviz/page"
	"github.com/danielhkuo/algoviz/reveal"
	"github.com/danielhkuo/algoviz/validate"
)

// ErrBusy is returned by Click while the button is disabled
var ErrBusy = errors.New("control is busy")

// Controller handles clicks on one page's button
type Controller interface {
	Click(ctx context.Context) error
	Document() *page.Document
}

// view holds the regions shared by both pages
type view struct {
	doc       *page.Document
	button    *page.Element
	resultBox *page.Element
	errorMsg  *page.Element

	// nil when the page has no steps container
	stepsContainer *page.Element
	stepsList      *page.Element

	revealer *reveal.Revealer

	// held for the whole click so overlapping clicks are inert
	mu sync.Mutex
}

func newView(doc *page.Document, buttonID string, revealer *reveal.Revealer) (*view, error) {
	v := &view{
		doc:            doc,
		button:         doc.ByID(buttonID),
		resultBox:      doc.ByID(page.IDResultBox),
		errorMsg:       doc.ByID(page.IDErrorMsg),
		stepsContainer: doc.ByID(page.IDStepsContainer),
		stepsList:      doc.ByID(page.IDStepsList),
		revealer:       revealer,
	}
	if v.button == nil {
		return nil, missing(buttonID)
	}
	if v.resultBox == nil {
		return nil, missing(page.IDResultBox)
	}
	if v.errorMsg == nil {
		return nil, missing(page.IDErrorMsg)
	}
	if (v.stepsContainer == nil) != (v.stepsList == nil) {
		return nil, fmt.Errorf("page needs both #%s and #%s or neither", page.IDStepsContainer, page.IDStepsList)
	}
	if v.revealer == nil {
		v.revealer = reveal.New(0, 0)
	}
	return v, nil
}

func missing(id string) error {
	return fmt.Errorf("page has no #%s element", id)
}

// acquire claims the button for one click. It fails while a click is
// already running or the button is disabled.
func (v *view) acquire() bool {
	if !v.mu.TryLock() {
		return false
	}
	if v.button.Disabled() {
		v.mu.Unlock()
		return false
	}
	return true
}

func (v *view) release() {
	v.mu.Unlock()
}

// reset hides every output region before a new click
func (v *view) reset() {
	v.resultBox.Hide()
	v.errorMsg.Hide()
	if v.stepsContainer != nil {
		v.stepsContainer.Hide()
	}
}

// busy disables the button under busyLabel and returns the func that
// restores its original label and enabled state
func (v *view) busy(busyLabel string) func() {
	original := v.button.Text()
	v.button.SetDisabled(true)
	v.button.SetText(busyLabel)
	return func() {
		v.button.SetDisabled(false)
		v.button.SetText(original)
	}
}

// revealSteps animates steps when the page has a steps container and
// there is something to show
func (v *view) revealSteps(ctx context.Context, steps []string) error {
	if v.stepsContainer == nil || len(steps) == 0 {
		return nil
	}
	return v.revealer.Reveal(ctx, v.stepsContainer, v.stepsList, steps)
}

func (v *view) showResult() {
	v.errorMsg.Hide()
	v.resultBox.Show()
}

// showError hides the result region, then shows message
func (v *view) showError(message string) {
	v.resultBox.Hide()
	v.errorMsg.SetText(message)
	v.errorMsg.Show()
}

// Message maps a click error to the text shown in the error region
func Message(err error) string {
	var vErr *validate.Error
	var serverErr *dispatch.ServerError
	var transportErr *dispatch.TransportError

	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.As(err, &serverErr):
		return serverErr.Message
	case errors.As(err, &transportErr):
		return dispatch.MsgConnectionFailed
	default:
		return dispatch.MsgGeneric
	}
}
