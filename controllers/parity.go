// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controllers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/danielhkuo/algoviz/models"
	"github.com/danielhkuo/algoviz/page"
	"github.com/danielhkuo/algoviz/reveal"
	"github.com/danielhkuo/algoviz/validate"
)

// ParityBusyLabel is shown on the parity button while a request is running
const ParityBusyLabel = "Calculating..."

// ParityGenerator is the parity endpoint of the computation service
type ParityGenerator interface {
	Parity(ctx context.Context, binary, mode string) (models.ParityResult, error)
}

type ParityController struct {
	*view
	input  *page.Element
	mode   *page.Element
	client ParityGenerator

	original    *page.Element
	bit         *page.Element
	transmitted *page.Element
	parityType  *page.Element

	// StrictBinary rejects characters other than 0 and 1 before posting
	StrictBinary bool
}

// NewParityController wires a parity page to client
func NewParityController(doc *page.Document, client ParityGenerator, revealer *reveal.Revealer) (*ParityController, error) {
	v, err := newView(doc, page.IDParityButton, revealer)
	if err != nil {
		return nil, err
	}
	c := &ParityController{
		view:        v,
		input:       doc.ByID(page.IDBinaryInput),
		mode:        doc.ByID(page.IDParityType),
		client:      client,
		original:    doc.ByID(page.IDResOriginal),
		bit:         doc.ByID(page.IDResBit),
		transmitted: doc.ByID(page.IDResTransmitted),
		parityType:  doc.ByID(page.IDResType),
	}

	required := map[string]*page.Element{
		page.IDBinaryInput:    c.input,
		page.IDParityType:     c.mode,
		page.IDResOriginal:    c.original,
		page.IDResBit:         c.bit,
		page.IDResTransmitted: c.transmitted,
		page.IDResType:        c.parityType,
	}
	for id, el := range required {
		if el == nil {
			return nil, missing(id)
		}
	}
	return c, nil
}

func (c *ParityController) Document() *page.Document {
	return c.doc
}

// Click validates the binary input and mode, posts them, and renders
// the outcome. The returned error has already been shown on the page.
func (c *ParityController) Click(ctx context.Context) error {
	if !c.acquire() {
		return ErrBusy
	}
	defer c.release()

	c.reset()

	binary, err := validate.BinaryString(c.input.Value(), c.StrictBinary)
	if err != nil {
		c.showError(Message(err))
		return err
	}
	mode, err := validate.ParityMode(c.mode.Value())
	if err != nil {
		c.showError(Message(err))
		return err
	}

	restore := c.busy(ParityBusyLabel)
	defer restore()

	slog.Info("parity requested", "bits", len(binary), "type", mode)
	result, err := c.client.Parity(ctx, binary, mode)
	if err != nil {
		c.showError(Message(err))
		return err
	}

	if err := c.revealSteps(ctx, result.Steps); err != nil {
		return err
	}

	c.original.SetText(result.Original)
	c.bit.SetText(result.ParityBit)
	c.transmitted.SetText(result.Transmitted)
	c.parityType.SetText(strings.ToUpper(result.Type))
	c.showResult()
	return nil
}
