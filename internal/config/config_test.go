package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.WorldFile != "" {
		t.Fatalf("expected embedded demo world by default, got %q", cfg.App.WorldFile)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions by default, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
	if cfg.Features.Telemetry {
		t.Fatalf("expected telemetry disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"GRIDSPEAK_WORLD=env-world.yaml",
		"GRIDSPEAK_WIDTH=40",
		"GRIDSPEAK_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-world", "flag-world.yaml", "-width", "120"}, env)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.WorldFile != "flag-world.yaml" {
		t.Fatalf("expected flag to win, got %q", cfg.App.WorldFile)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected flag width 120, got %d", cfg.App.Width)
	}
	// Untouched flags still pick up the environment.
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"GRIDSPEAK_WIDTH=abc", "GRIDSPEAK_TRACE=banana"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected fallback width 0, got %d", cfg.App.Width)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected fallback trace false")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-telemetry", "-log-file", "session.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Flags["telemetry"] != "true" {
		t.Fatalf("expected telemetry flag recorded, got %q", cfg.Flags["telemetry"])
	}
	if cfg.Flags["logFile"] != "session.log" {
		t.Fatalf("expected log file recorded, got %q", cfg.Flags["logFile"])
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected argv preserved, got %v", cfg.Args)
	}
}

func TestValidateMissingWorldFile(t *testing.T) {
	cfg, err := LoadArgs([]string{"-world", "definitely-missing.yaml"}, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for missing world file")
	}
}
