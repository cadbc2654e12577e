// shooter is a timed target-shooting game for the terminal.
//
// Usage:
//
//	shooter play             - Play in the terminal (mouse clicks shoot)
//	shooter simulate         - Run headless rounds with a bot player
//	shooter skins            - List the registered target skins
//	shooter config print     - Print the effective configuration
//	shooter config validate  - Validate a configuration file
//
// Global flags:
//
//	--config <path>       - Session config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--rng <algorithm>     - cmwc or mt19937 (overrides the config)
//	--seed <value>        - RNG seed for reproducible rounds
//	--fps <rate>          - Frame rate (default: 60)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	_ "github.com/vovakirdan/tui-shooter/internal/games/shooter" // registers the skins
)

var (
	// Global flags
	flagFPS        int
	flagSeed       uint32
	flagConfig     string
	flagDifficulty string
	flagRNG        string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - a 30 second target gallery in your terminal",
	Long: `Shooter is a timed target-shooting game. Hit the evil targets,
spare the heroes and shout to make every shot count.

Available commands:
  play      - Play in the terminal
  simulate  - Run headless rounds with a bot player
  skins     - List target skins
  config    - Print or validate configuration

Examples:
  shooter play
  shooter play --difficulty hard --rng cmwc
  shooter simulate --rounds 20 --seed 42
  shooter simulate --mic clap.wav
  shooter config validate ./configs/shooter.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to session config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagRNG, "rng", "", "RNG algorithm: cmwc, mt19937 (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, the difficulty preset and the RNG override.
func loadConfig() (config.ShooterConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}
	config.ApplyShooterPreset(&cfg, preset)
	if flagRNG != "" {
		cfg.RNG.Algorithm = flagRNG
	}

	if err := cfg.Validate(); err != nil {
		return config.ShooterConfig{}, "", err
	}
	return cfg, preset, nil
}

// newLogger builds the process logger. fallback receives the output when
// no --log-file is given. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closer, nil
}

// resolveSeed returns --seed, or a random seed when it is zero.
func resolveSeed() uint32 {
	if flagSeed != 0 {
		return flagSeed
	}
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 1
	}
	return binary.LittleEndian.Uint32(b[:])
}
