package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sablewing/gridspeak/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Telemetry bool
}

const (
	envWorld     = "GRIDSPEAK_WORLD"
	envWidth     = "GRIDSPEAK_WIDTH"
	envHeight    = "GRIDSPEAK_HEIGHT"
	envVerbose   = "GRIDSPEAK_VERBOSE"
	envTrace     = "GRIDSPEAK_TRACE"
	envLogFile   = "GRIDSPEAK_LOG_FILE"
	envTelemetry = "GRIDSPEAK_TELEMETRY"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gridspeak", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	world := fs.String("world", envOrDefault(env, envWorld, ""), "path to a YAML world file (empty uses the embedded demo world)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "echo spoken announcements to the transcript pane")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	telemetry := fs.Bool("telemetry", envOrBool(env, envTelemetry, false), "export OpenTelemetry spans over OTLP")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			WorldFile: *world,
			Width:     *width,
			Height:    *height,
			Verbose:   *verbose,
			Telemetry: *telemetry,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Telemetry: *telemetry,
		},
		Flags: map[string]string{
			"world":     *world,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"telemetry": strconv.FormatBool(*telemetry),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.WorldFile != "" {
		if _, err := os.Stat(cfg.App.WorldFile); err != nil {
			return fmt.Errorf("world file: %w", err)
		}
	}
	return nil
}
