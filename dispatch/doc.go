// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dispatch sends validated input to the computation service.

# Client

	client := dispatch.NewClient("http://localhost:5000", 30*time.Second)
	result, err := client.Sort(ctx, []float64{5, 3, 1})
	result, err := client.Parity(ctx, "1011", models.ParityEven)

Both calls POST a JSON body and block until the service answers, the
timeout expires, or ctx is cancelled.

# Outcomes

Every call ends in exactly one of:

  - success: the decoded SortResult or ParityResult, nil error
  - *ServerError: non-2xx status; Message is the body's "error" field,
    or "An error occurred." when it is missing
  - *TransportError: no usable reply; Error() is "Connection failed."

	var serverErr *dispatch.ServerError
	if errors.As(err, &serverErr) {
		// show serverErr.Message
	}

Requests go through middleware.WithRequestID and middleware.WithLogging.
*/
package dispatch
