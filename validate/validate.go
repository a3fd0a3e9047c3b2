// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/algoviz/models"
)

// User-facing validation messages
const (
	MsgNoNumbers      = "Please enter some numbers."
	MsgInvalidNumbers = "Invalid input. Please enter numbers separated by commas."
	MsgNoBinary       = "Please enter a binary string."
	MsgInvalidBinary  = "Invalid binary string. Use only 0s and 1s."
	MsgInvalidParity  = "Invalid parity type. Use 'even' or 'odd'."
)

// Error is a validation failure. Message is shown to the user as-is.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(msg string) error {
	return &Error{Message: msg}
}

// NumberList parses comma-separated numbers.
// Blank tokens are dropped; any token that is not a finite number fails
// the whole list, and so does a list with no tokens left.
func NumberList(raw string) ([]float64, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, fail(MsgNoNumbers)
	}

	var numbers []float64
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, ok := parseNumber(token)
		if !ok {
			return nil, fail(MsgInvalidNumbers)
		}
		numbers = append(numbers, n)
	}

	if len(numbers) == 0 {
		return nil, fail(MsgInvalidNumbers)
	}
	return numbers, nil
}

// parseNumber accepts finite decimals and unsigned 0x, 0o, and 0b
// integers, the literal forms a browser's number conversion takes.
// Hex floats and digit separators are not numbers there.
func parseNumber(token string) (float64, bool) {
	if strings.Contains(token, "_") {
		return 0, false
	}
	if len(token) > 2 && token[0] == '0' && strings.ContainsRune("xXoObB", rune(token[1])) {
		n, err := strconv.ParseUint(token, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	if strings.ContainsAny(token, "xXpP") {
		return 0, false
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// BinaryString trims the input and rejects empty strings.
// With strict set, characters other than '0' and '1' are rejected too;
// otherwise that check is left to the service.
func BinaryString(raw string, strict bool) (string, error) {
	binary := strings.TrimSpace(raw)
	if binary == "" {
		return "", fail(MsgNoBinary)
	}
	if strict && strings.Trim(binary, "01") != "" {
		return "", fail(MsgInvalidBinary)
	}
	return binary, nil
}

// ParityMode normalizes a parity selection. Empty means even.
func ParityMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "":
		return models.ParityEven, nil
	case models.ParityEven, models.ParityOdd:
		return mode, nil
	default:
		return "", fail(MsgInvalidParity)
	}
}
