// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types exchanged with the computation service.

# Request Types

Bodies POSTed by the dispatcher:

  - SortRequest: numbers ([]float64)
  - ParityRequest: binary, type ("even" or "odd")

# Response Types

Bodies returned on success:

  - SortResult: sorted, steps
  - ParityResult: original, parity_bit, transmitted, type, steps

Bodies returned on failure:

  - ErrorResponse: error, message (optional)

# Constants

Parity modes:

	ParityEven = "even"
	ParityOdd  = "odd"

Endpoints:

	PathCountingSort = "/counting-sort"
	PathParity       = "/parity"

All values are transient: built for one request and discarded once the
page has been rendered.
*/
package models
