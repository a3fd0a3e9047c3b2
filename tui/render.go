// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/algoviz/page"
)

// renderStep styles "Step N:" apart from the step text
func (s Styles) renderStep(text string) string {
	number, rest, ok := strings.Cut(text, ":")
	if !ok {
		return s.Step.Render(text)
	}
	return s.Step.Render(s.StepNumber.Render(number+":") + rest)
}

// renderResult lists each labelled field of the result box
func (s Styles) renderResult(box *page.Element) string {
	var lines []string
	for _, field := range box.Children() {
		lines = append(lines, fmt.Sprintf("%s %s", s.Label.Render(field.Label()+":"), s.Value.Render(field.Text())))
	}
	return s.Result.Render(strings.Join(lines, "\n"))
}
