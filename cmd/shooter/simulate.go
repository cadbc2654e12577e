package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/input"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/rng"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagRounds   int
	flagMic      string
	flagSide     string
	flagAccuracy int
	flagMistakes int
	flagReaction uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless rounds with a bot player",
	Long: `Play rounds without a terminal. A bot touches the targets on a
simulated clock and shouts before every shot; the results are journaled
and printed as a leaderboard.

With --mic the volume gate listens to a WAV recording instead of the
bot's shouts.

Examples:
  shooter simulate
  shooter simulate --rounds 50 --seed 7 --rng cmwc
  shooter simulate --accuracy 60 --mistakes 25 --side left
  shooter simulate --mic ./testdata/clap.wav`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	def := input.DefaultBotConfig()
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of rounds to play")
	simulateCmd.Flags().StringVar(&flagMic, "mic", "", "WAV recording used as microphone input")
	simulateCmd.Flags().StringVar(&flagSide, "side", "right", "Start button the bot touches: left, right")
	simulateCmd.Flags().IntVar(&flagAccuracy, "accuracy", def.Accuracy, "Bot accuracy in percent")
	simulateCmd.Flags().IntVar(&flagMistakes, "mistakes", def.Mistakes, "Chance in percent that the bot aims at a hero")
	simulateCmd.Flags().Uint64Var(&flagReaction, "reaction", def.Reaction, "Milliseconds between bot shots")
}

// simOptions is everything a simulation needs besides the config.
type simOptions struct {
	Rounds     int
	Seed       uint32
	FPS        int
	MicPath    string
	Side       string
	Bot        input.BotConfig
	Difficulty string
	Logger     *log.Logger
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	return simulate(cmd.OutOrStdout(), cfg, simOptions{
		Rounds:     flagRounds,
		Seed:       resolveSeed(),
		FPS:        flagFPS,
		MicPath:    flagMic,
		Side:       flagSide,
		Bot:        input.BotConfig{Reaction: flagReaction, Accuracy: flagAccuracy, Mistakes: flagMistakes},
		Difficulty: string(preset),
		Logger:     logger,
	})
}

func simulate(w io.Writer, cfg config.ShooterConfig, opts simOptions) error {
	if opts.Rounds <= 0 {
		return fmt.Errorf("--rounds must be positive, got %d", opts.Rounds)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	start := core.Pt(cfg.Display.Width*3/4, cfg.Display.Height/2)
	switch opts.Side {
	case "left":
		start.X = cfg.Display.Width / 4
	case "right", "":
	default:
		return fmt.Errorf("unknown --side %q (want left or right)", opts.Side)
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	clock := &input.ManualClock{}
	var mic *input.Microphone
	var shouter input.Shouter
	if opts.MicPath != "" {
		rec, err := input.OpenWAV(opts.MicPath)
		if err != nil {
			return err
		}
		defer rec.Close()
		mic = rec.Microphone(clock)
		opts.Logger.Info("listening to recording", "path", opts.MicPath,
			"rate", rec.Format.SampleRate, "length", rec.Format.SampleRate.D(rec.Len()).Round(time.Millisecond))
	} else {
		mic = input.NewMicrophone(clock, input.DefaultSampleRate)
		shouter = mic
	}

	// The bot draws from its own generator so its choices never disturb
	// the session's placement sequence.
	botSrc, err := rng.New(rng.Algorithm(cfg.RNG.Algorithm), opts.Seed^0x5bd1e995)
	if err != nil {
		return err
	}
	display := core.NewRect(0, 0, cfg.Display.Width, cfg.Display.Height)
	bot := input.NewBot(opts.Bot, botSrc, clock, shouter, start, display)

	session, err := shooter.NewSession(cfg, shooter.Deps{
		Clock:      clock,
		Touches:    bot,
		Volume:     mic,
		Renderer:   tui.NewCanvas(),
		Recorder:   store,
		Logger:     opts.Logger,
		Seed:       opts.Seed,
		Difficulty: opts.Difficulty,
	})
	if err != nil {
		return err
	}
	bot.Watch(session.Targets())

	step := uint64(1000 / max(1, opts.FPS))
	if step == 0 {
		step = 1
	}
	// Generous cap so a bot that never starts a round cannot spin forever.
	roundTicks := uint64(cfg.Session.DurationSecs)*cfg.Session.CountdownInterval + 10_000
	maxFrames := uint64(opts.Rounds) * (roundTicks/step + 1) * 2

	played := 0
	for frame := uint64(0); played < opts.Rounds; frame++ {
		if frame >= maxFrames {
			return fmt.Errorf("simulation stalled after %d of %d rounds", played, opts.Rounds)
		}
		clock.Advance(step)
		if session.Tick() == shooter.ModeGameOver {
			played++
		}
	}

	return printLeaderboard(w, store, opts, bot.Shots())
}

func printLeaderboard(w io.Writer, store *storage.Store, opts simOptions, shots int) error {
	rounds, err := store.TopRounds("", opts.Rounds)
	if err != nil {
		return err
	}
	high, err := store.HighScore("")
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Simulated %d rounds (seed %d, %s shots)\n\n", opts.Rounds, opts.Seed, humanize.Comma(int64(shots)))

	board := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Skin", "Score", "Evil", "Hero", "Super", "Duration")
	for i, r := range rounds {
		board.Row(
			humanize.Ordinal(i+1), r.Skin, humanize.Comma(int64(r.Score)),
			fmt.Sprint(r.EvilHits), fmt.Sprint(r.HeroHits),
			fmt.Sprintf("%d/%d", r.SuperHits, r.Supers),
			(time.Duration(r.DurationMs) * time.Millisecond).String(),
		)
	}
	fmt.Fprintln(w, board.String())

	skins := make([]string, 0, len(stats))
	for skin := range stats {
		skins = append(skins, skin)
	}
	sort.Strings(skins)

	fmt.Fprintln(w)
	for _, skin := range skins {
		st := stats[skin]
		fmt.Fprintf(w, "%s: %d rounds, average %.1f, best %s\n",
			st.Skin, st.Rounds, st.AvgScore, humanize.Comma(int64(st.HighScore)))
	}
	fmt.Fprintf(w, "Highscore: %s\n", humanize.Comma(int64(high)))
	return nil
}
