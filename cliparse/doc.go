// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The first argument is the command (sort or parity). Flags may come
before or after the input. The remaining arguments are joined with
spaces and become the page input. Arguments that look like negative
numbers are input, and so is everything after "--":

	algoviz sort -steps=false 5, 3, 1
	algoviz sort -3,1
	algoviz parity 1011 -mode odd
	algoviz parity -- -1011

# Config Fields

  - Command: "sort" or "parity"
  - Input, InputGiven: positional input, and whether any was given
  - Mode: parity mode (parity only, default even)
  - ServerURL: computation service base URL (default: http://localhost:5000)
  - Timeout: per-request timeout (default: 30s, 0 waits forever)
  - ShowSteps: reveal the step trace (default: true)
  - ShowDelay, StepDelay: reveal timing (default: 100ms, 600ms)
  - StrictBinary: reject non 0/1 input locally (default: false)
  - Plain: line output even on a terminal
  - LogLevel, LogFile: slog level (default: info) and destination

# Environment Variables

Flags fall back to environment variables:

	ALGOVIZ_SERVER_URL → -s
	REQUEST_TIMEOUT    → -timeout
	SHOW_STEPS         → -steps
	STEP_SHOW_DELAY    → -show-delay
	STEP_DELAY         → -step-delay
	STRICT_BINARY      → -strict-binary
	LOG_LEVEL          → -log-level
	LOG_FILE           → -log-file

CLI flags take precedence over environment variables. LoadEnvFile fills
the environment from a .env file first without overriding anything
already set:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
*/
package cliparse
