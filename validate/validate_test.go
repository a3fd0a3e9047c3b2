// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumberList(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []float64
		errMsg   string
	}{
		{"simple", "5,3,1,4,1,5,9", []float64{5, 3, 1, 4, 1, 5, 9}, ""},
		{"spaces", "  3 , 1 ,2  ", []float64{3, 1, 2}, ""},
		{"blank tokens dropped", "1,,2, ,3,", []float64{1, 2, 3}, ""},
		{"negative and decimal", "-4, 2.5", []float64{-4, 2.5}, ""},
		{"empty", "", nil, MsgNoNumbers},
		{"whitespace only", "   \t\n ", nil, MsgNoNumbers},
		{"word", "3, 1, two", nil, MsgInvalidNumbers},
		{"only commas", ", , ,", nil, MsgInvalidNumbers},
		{"nan", "1, NaN", nil, MsgInvalidNumbers},
		{"infinity", "Inf, 2", nil, MsgInvalidNumbers},
		{"semicolons", "1;2;3", nil, MsgInvalidNumbers},
		{"radix literals", "0x1F, 0b101, 0o7, 0X10", []float64{31, 5, 7, 16}, ""},
		{"exponent", "1e3, .5, +2", []float64{1000, 0.5, 2}, ""},
		{"hex float", "0x1p3", nil, MsgInvalidNumbers},
		{"signed hex", "-0x1F", nil, MsgInvalidNumbers},
		{"bad hex digit", "0x1G", nil, MsgInvalidNumbers},
		{"digit separator", "1_000", nil, MsgInvalidNumbers},
		{"prefixed separator", "0x_1F", nil, MsgInvalidNumbers},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			numbers, err := NumberList(tc.input)

			if tc.errMsg != "" {
				var vErr *Error
				if !errors.As(err, &vErr) {
					t.Fatalf("Expected validation error, got %v", err)
				}
				if vErr.Message != tc.errMsg {
					t.Errorf("Expected message %q, got %q", tc.errMsg, vErr.Message)
				}
				if numbers != nil {
					t.Errorf("Expected no numbers on failure, got %v", numbers)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, numbers); diff != "" {
				t.Errorf("numbers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBinaryString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		strict   bool
		expected string
		errMsg   string
	}{
		{"trimmed", "  1011 ", false, "1011", ""},
		{"empty", "", false, "", MsgNoBinary},
		{"whitespace", "   ", true, "", MsgNoBinary},
		{"lenient passes other characters", "10a1", false, "10a1", ""},
		{"strict rejects other characters", "10a1", true, "", MsgInvalidBinary},
		{"strict accepts bits", "0001", true, "0001", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			binary, err := BinaryString(tc.input, tc.strict)
			if tc.errMsg != "" {
				if err == nil || err.Error() != tc.errMsg {
					t.Errorf("Expected error %q, got %v", tc.errMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if binary != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, binary)
			}
		})
	}
}

func TestParityMode(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"even", "even", false},
		{"ODD", "odd", false},
		{" Even ", "even", false},
		{"", "even", false},
		{"both", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := ParityMode(tc.input)
			if tc.wantErr {
				if err == nil || err.Error() != MsgInvalidParity {
					t.Errorf("Expected %q, got %v", MsgInvalidParity, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if mode != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, mode)
			}
		})
	}
}
