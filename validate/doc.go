// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate turns raw page input into request values.

Every failure is a *Error whose Message is the text shown in the page's
error region:

	numbers, err := validate.NumberList("5, 3, 1")
	binary, err := validate.BinaryString("1011", false)
	mode, err := validate.ParityMode("odd")

Validation happens before any network call; a failed validation never
reaches the computation service.
*/
package validate
