package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Commands
const (
	CommandSort   = "sort"
	CommandParity = "parity"
)

// Defaults
const (
	DefaultServerURL = "http://localhost:5000"
	DefaultTimeout   = 30 * time.Second
	DefaultShowDelay = 100 * time.Millisecond
	DefaultStepDelay = 600 * time.Millisecond
	DefaultLogLevel  = "info"
)

type Config struct {
	Command      string
	Input        string
	InputGiven   bool
	Mode         string
	ServerURL    string
	Timeout      time.Duration
	ShowSteps    bool
	ShowDelay    time.Duration
	StepDelay    time.Duration
	StrictBinary bool
	Plain        bool
	LogLevel     string
	LogFile      string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment.
// Variables already set win, and a missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the command, its flags, and positional input
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if len(args) == 0 {
		return Config{}, errors.New("command required: sort or parity")
	}
	cfg.Command = args[0]
	if cfg.Command != CommandSort && cfg.Command != CommandParity {
		return Config{}, fmt.Errorf("unknown command %q: use sort or parity", cfg.Command)
	}

	fs := flag.NewFlagSet("algoviz "+cfg.Command, flag.ContinueOnError)

	// Service (can be CLI args or env)
	fs.StringVar(&cfg.ServerURL, "s", "", "Computation service base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Request timeout, 0 waits forever")

	// Page behavior
	fs.BoolVar(&cfg.ShowSteps, "steps", true, "Reveal the step trace before the result")
	fs.DurationVar(&cfg.ShowDelay, "show-delay", 0, "Delay before each step becomes visible")
	fs.DurationVar(&cfg.StepDelay, "step-delay", 0, "Delay after each step is revealed")
	fs.BoolVar(&cfg.StrictBinary, "strict-binary", false, "Reject binary input other than 0 and 1 locally")
	fs.StringVar(&cfg.Mode, "mode", "", "Parity mode: even or odd")
	fs.BoolVar(&cfg.Plain, "plain", false, "Print output line by line instead of the interactive page")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Write logs to this file")

	input, err := parseInterspersed(fs, args[1:])
	if err != nil {
		return Config{}, err
	}
	cfg.Input = strings.Join(input, " ")
	cfg.InputGiven = len(input) > 0

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.ServerURL == "" {
		cfg.ServerURL = os.Getenv("ALGOVIZ_SERVER_URL")
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}

	if !set["timeout"] {
		if cfg.Timeout, err = durationEnv("REQUEST_TIMEOUT", DefaultTimeout); err != nil {
			return Config{}, err
		}
	}
	if !set["show-delay"] {
		if cfg.ShowDelay, err = durationEnv("STEP_SHOW_DELAY", DefaultShowDelay); err != nil {
			return Config{}, err
		}
	}
	if !set["step-delay"] {
		if cfg.StepDelay, err = durationEnv("STEP_DELAY", DefaultStepDelay); err != nil {
			return Config{}, err
		}
	}
	if !set["steps"] {
		if cfg.ShowSteps, err = boolEnv("SHOW_STEPS", true); err != nil {
			return Config{}, err
		}
	}
	if !set["strict-binary"] {
		if cfg.StrictBinary, err = boolEnv("STRICT_BINARY", false); err != nil {
			return Config{}, err
		}
	}

	if cfg.Timeout < 0 || cfg.ShowDelay < 0 || cfg.StepDelay < 0 {
		return Config{}, errors.New("durations must not be negative")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("LOG_FILE")
	}

	if cfg.Mode != "" && cfg.Command != CommandParity {
		return Config{}, errors.New("-mode only applies to the parity command")
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable", key)
	}
	return b, nil
}

// parseInterspersed parses flags anywhere in args and returns the
// positional arguments in order. Arguments that look like negative
// numbers are input, and everything after "--" is input.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for len(args) > 0 {
		if isNegativeNumber(args[0]) {
			positional = append(positional, args[0])
			args = args[1:]
			continue
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
	return positional, nil
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return (arg[1] >= '0' && arg[1] <= '9') || arg[1] == '.'
}
