// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for algoviz.

algoviz is a terminal front end for two algorithm demonstrations served
by an external computation service: counting sort and parity bit
generation. It validates input, posts it to the service, and renders the
reply, optionally replaying the service's step trace one step at a time.

# Running

One click, printed line by line:

	algoviz sort 5,3,1,4,1,5,9
	algoviz sort -3,1 -steps=false
	algoviz parity -mode odd 1011

Flags may follow the input. Use "--" to pass input that starts with a
dash and is not a negative number.

Interactive page (when no input is given and stdout is a terminal):

	algoviz sort
	algoviz parity

# Configuration

Settings come from flags, then environment variables, then a .env file
in the working directory:

  - ALGOVIZ_SERVER_URL (-s): service base URL (default: http://localhost:5000)
  - REQUEST_TIMEOUT (-timeout): per-request timeout (default: 30s)
  - SHOW_STEPS (-steps): reveal the step trace (default: true)
  - STRICT_BINARY (-strict-binary): check 0/1 before posting

# Exit Status

0 when a result was rendered, 1 when an error was rendered or the
configuration was invalid.

# Architecture

  - cliparse: configuration parsing
  - models: request and response types
  - validate: input validation
  - middleware: transport logging and request ids, JSON helpers
  - dispatch: HTTP client for the computation service
  - page: element tree with fixed ids
  - reveal: staggered step reveal
  - controllers: sort and parity click handlers
  - tui: line printer and interactive bubbletea page
  - testutil: fake computation service for tests

See package documentation for each component.
*/
package main
