// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controllers

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danielhkuo/algoviz/models"
	"github.com/danielhkuo/algoviz/page"
	"github.com/danielhkuo/algoviz/reveal"
	"github.com/danielhkuo/algoviz/validate"
)

// SortBusyLabel is shown on the sort button while a request is running
const SortBusyLabel = "Processing..."

// Sorter is the counting sort endpoint of the computation service
type Sorter interface {
	Sort(ctx context.Context, numbers []float64) (models.SortResult, error)
}

type SortController struct {
	*view
	input  *page.Element
	output *page.Element
	client Sorter
}

// NewSortController wires a sort page to client
func NewSortController(doc *page.Document, client Sorter, revealer *reveal.Revealer) (*SortController, error) {
	v, err := newView(doc, page.IDSortButton, revealer)
	if err != nil {
		return nil, err
	}
	c := &SortController{
		view:   v,
		input:  doc.ByID(page.IDNumbersInput),
		output: doc.ByID(page.IDSortedOutput),
		client: client,
	}
	if c.input == nil {
		return nil, missing(page.IDNumbersInput)
	}
	if c.output == nil {
		return nil, missing(page.IDSortedOutput)
	}
	return c, nil
}

func (c *SortController) Document() *page.Document {
	return c.doc
}

// Click validates the numbers input, posts it, and renders the outcome.
// The returned error has already been shown on the page.
func (c *SortController) Click(ctx context.Context) error {
	if !c.acquire() {
		return ErrBusy
	}
	defer c.release()

	c.reset()

	numbers, err := validate.NumberList(c.input.Value())
	if err != nil {
		c.showError(Message(err))
		return err
	}

	restore := c.busy(SortBusyLabel)
	defer restore()

	slog.Info("sort requested", "count", len(numbers))
	result, err := c.client.Sort(ctx, numbers)
	if err != nil {
		c.showError(Message(err))
		return err
	}

	if err := c.revealSteps(ctx, result.Steps); err != nil {
		return err
	}

	c.output.SetText(JoinNumbers(result.Sorted))
	c.showResult()
	return nil
}

// JoinNumbers renders numbers separated by ", "
func JoinNumbers(numbers []float64) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
