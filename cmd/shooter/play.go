package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Click the left or right half of the screen to start a round with that
side's skin. Click targets to shoot them; a shot only counts while the
microphone is loud, so hold Space to shout or click the MIC button in
the bottom-left corner to switch to silent mode.

Controls:
  Mouse      - Shoot / start a round
  Space      - Shout
  Esc/B      - Abort the running round
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is given, so they never corrupt
the screen.

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --seed 42 --log-file shooter.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = flagFPS

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		// Continue without the journal
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runtime.Seed = resolveSeed()
	logger.Info("starting session", "seed", runtime.Seed, "rng", cfg.RNG.Algorithm, "difficulty", preset)

	err = tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    runtime,
		Store:      store,
		Logger:     logger,
		Difficulty: string(preset),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
