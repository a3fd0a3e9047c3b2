// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/algoviz/cliparse"
	"github.com/danielhkuo/algoviz/models"
	"github.com/danielhkuo/algoviz/testutil"
)

func TestRun_SortOnce(t *testing.T) {
	svc := testutil.NewFakeService(t)
	svc.Reply(models.PathCountingSort, http.StatusOK, models.SortResult{
		Sorted: []float64{1, 1, 3, 4, 5, 5, 9},
		Steps:  []string{"Input Data: [5, 3, 1, 4, 1, 5, 9]"},
	})

	cfg := testutil.GetTestConfig(svc.URL())
	cfg.Command = cliparse.CommandSort
	cfg.Input = "5,3,1,4,1,5,9"

	var out bytes.Buffer
	if code := run(context.Background(), cfg, false, &out); code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, out.String())
	}

	if !strings.Contains(out.String(), "Step 1: Input Data") {
		t.Errorf("Expected step in output, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1, 1, 3, 4, 5, 5, 9") {
		t.Errorf("Expected sorted output, got:\n%s", out.String())
	}
}

func TestRun_ParityOnce(t *testing.T) {
	svc := testutil.NewFakeService(t)
	svc.Reply(models.PathParity, http.StatusOK, models.ParityResult{
		Original: "1011", ParityBit: "0", Transmitted: "10110", Type: "odd",
	})

	cfg := testutil.GetTestConfig(svc.URL())
	cfg.Command = cliparse.CommandParity
	cfg.Input = "1011"
	cfg.Mode = "odd"
	cfg.ShowSteps = false

	var out bytes.Buffer
	if code := run(context.Background(), cfg, false, &out); code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}

	if body := string(svc.Calls()[0].Body); body != `{"binary":"1011","type":"odd"}` {
		t.Errorf("Unexpected request body: %s", body)
	}
	for _, want := range []string{"10110", "ODD"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected '%s' in output, got:\n%s", want, out.String())
		}
	}
}

func TestRun_Failures(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		svc := testutil.NewFakeService(t)
		cfg := testutil.GetTestConfig(svc.URL())
		cfg.Command = cliparse.CommandSort
		cfg.Input = "3, 1, two"

		var out bytes.Buffer
		if code := run(context.Background(), cfg, false, &out); code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
		if !strings.Contains(out.String(), "Invalid input. Please enter numbers separated by commas.") {
			t.Errorf("Expected validation message, got:\n%s", out.String())
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		cfg := testutil.GetTestConfig(testutil.UnreachableURL(t))
		cfg.Command = cliparse.CommandParity
		cfg.Input = "1"

		var out bytes.Buffer
		if code := run(context.Background(), cfg, false, &out); code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
		if !strings.Contains(out.String(), "Connection failed.") {
			t.Errorf("Expected connection failure, got:\n%s", out.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		cfg := testutil.GetTestConfig("http://localhost:1")
		cfg.Command = "bubble"

		if code := run(context.Background(), cfg, false, &bytes.Buffer{}); code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	})
}

func TestSetupLogging(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := testutil.GetTestConfig("")

	cfg.LogLevel = "loud"
	if _, err := setupLogging(cfg, false); err == nil {
		t.Error("Expected error for invalid level")
	}

	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "algoviz.log")
	closeLog, err := setupLogging(cfg, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	slog.Debug("written to file")
	closeLog()

	written, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(written), "written to file") {
		t.Errorf("Expected log line in file, got %q", written)
	}
}
