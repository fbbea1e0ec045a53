package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sablewing/gridspeak/internal/session"
	"github.com/sablewing/gridspeak/internal/sim"
	"github.com/sablewing/gridspeak/internal/speech"
	"github.com/sablewing/gridspeak/internal/telemetry"
	"github.com/sablewing/gridspeak/internal/ui"
)

const transcriptLimit = 200

// Config describes user-provided application options.
type Config struct {
	WorldFile string
	Width     int
	Height    int
	Verbose   bool
	Telemetry bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	spec := sim.DefaultSpec()
	if cfg.WorldFile != "" {
		loaded, err := sim.LoadFile(cfg.WorldFile)
		if err != nil {
			return fmt.Errorf("load world: %w", err)
		}
		spec = loaded
	}
	world, err := sim.New(spec)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
		tracer = telemetry.Tracer("session")
	}

	transcript := speech.NewTranscript(transcriptLimit)
	sess := session.New(world, transcript, tracer)
	world.SetConfirmer(sess.Menu().Confirm)
	defer sess.Teardown()

	model := ui.NewModel(world, sess, transcript, cfg.Width, cfg.Height, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
