package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/irab/internal/app"
	"github.com/abhisek/irab/internal/audio"
	"github.com/abhisek/irab/internal/config"
	"github.com/abhisek/irab/internal/logger"
	"github.com/abhisek/irab/internal/voice"
)

// runApp resolves configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	log.Info("starting", "version", version, "base_url", cfg.BaseURL)

	return app.Run(app.Options{
		Client:          newClient(cfg, log),
		Player:          newPlayer(cfg, log),
		Recognizer:      voice.Detect(cmd.Context(), cfg, log),
		LockAfterAnswer: cfg.LockAfterAnswer,
		Log:             log,
	})
}

// newPlayer picks the configured sound player, or the terminal bell.
func newPlayer(cfg config.Config, log *logger.Logger) audio.Player {
	if len(cfg.PlayerCommand) == 0 {
		return audio.NewBellPlayer(os.Stderr)
	}
	p := audio.NewCommandPlayer(cfg.PlayerCommand, audio.Assets{
		Correct: cfg.Sounds.Correct,
		Wrong:   cfg.Sounds.Wrong,
	})
	p.OnError = func(cue audio.Cue, err error) {
		log.Warn("sound playback failed", "cue", cue.String(), "error", err)
	}
	return p
}
