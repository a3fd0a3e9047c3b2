// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package page

import "github.com/danielhkuo/algoviz/models"

// Element ids
const (
	IDNumbersInput   = "numbers-input"
	IDSortButton     = "sort-btn"
	IDSortedOutput   = "sorted-output"
	IDBinaryInput    = "binary-input"
	IDParityType     = "parity-type"
	IDParityButton   = "parity-btn"
	IDResOriginal    = "res-original"
	IDResBit         = "res-bit"
	IDResTransmitted = "res-transmitted"
	IDResType        = "res-type"
	IDResultBox      = "result-box"
	IDErrorMsg       = "error-msg"
	IDStepsContainer = "steps-container"
	IDStepsList      = "steps-list"
)

// Button labels
const (
	SortButtonLabel   = "Sort & Visualize Steps"
	ParityButtonLabel = "Generate & Visualize Steps"
)

// ClassStepItem marks entries appended to the steps list
const ClassStepItem = "step-item"

// NewSortPage builds the counting sort page. Without steps the page has
// no steps container and results are rendered immediately.
func NewSortPage(withSteps bool) *Document {
	d := NewDocument()
	body := d.Root()

	d.add(body, "input", IDNumbersInput, "Numbers (comma-separated)")
	d.add(body, "button", IDSortButton, "").text = SortButtonLabel
	d.add(body, "div", IDErrorMsg, "").hidden = true
	if withSteps {
		addSteps(d)
	}

	result := d.add(body, "div", IDResultBox, "")
	result.hidden = true
	d.add(result, "span", IDSortedOutput, "Sorted Output")
	return d
}

// NewParityPage builds the parity bit page
func NewParityPage(withSteps bool) *Document {
	d := NewDocument()
	body := d.Root()

	d.add(body, "input", IDBinaryInput, "Binary Data")
	d.add(body, "select", IDParityType, "Parity Type").value = models.ParityEven
	d.add(body, "button", IDParityButton, "").text = ParityButtonLabel
	d.add(body, "div", IDErrorMsg, "").hidden = true
	if withSteps {
		addSteps(d)
	}

	result := d.add(body, "div", IDResultBox, "")
	result.hidden = true
	d.add(result, "span", IDResOriginal, "Original Data")
	d.add(result, "span", IDResBit, "Parity Bit")
	d.add(result, "span", IDResTransmitted, "Transmitted Data")
	d.add(result, "span", IDResType, "Parity Type")
	return d
}

func addSteps(d *Document) {
	container := d.add(d.Root(), "div", IDStepsContainer, "Step-by-step")
	container.hidden = true
	d.add(container, "div", IDStepsList, "")
}
