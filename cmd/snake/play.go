package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagBackend string
	flagSound   bool
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing snake. The variant defaults to "snake".

Controls:
  W/A/S/D, arrows  - Steer
  P                - Pause
  C                - Resume
  R                - Restart (after the round ended)
  Q/Ctrl+C         - Quit

Backends:
  tea    - Bubble Tea UI with help footer and leaderboard (default)
  tcell  - Draws straight to the terminal with tcell

Examples:
  snake play
  snake play snake_fair
  snake play --backend tcell --sound
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Display backend: tea, tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides audio.enabled)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name shown on the session leaderboard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}
	if flagBackend != "tea" && flagBackend != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want tea or tcell)\n", flagBackend)
		os.Exit(1)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := checkTerminal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session leaderboard", "error", err)
		// Continue without a leaderboard - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound *audio.SoundManager
	if flagSound || cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "error", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting game", "game", gameID, "backend", flagBackend, "seed", flagSeed)

	switch flagBackend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		_, err = term.Play(ctx, game, cfg, term.Options{
			Player: flagPlayer,
			Seed:   flagSeed,
			Store:  store,
			Sound:  sound,
			Logger: logger,
		})
	default:
		err = tui.Run(game, cfg, tui.Options{
			Player: flagPlayer,
			Seed:   flagSeed,
			Store:  store,
			Sound:  sound,
			Logger: logger,
		})
	}
	if err != nil {
		logger.Error("game failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	printSessionSummary(store, gameID)
}

// checkTerminal fails early when stdout is a terminal too small for the board.
func checkTerminal(cfg config.SnakeConfig) error {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return nil
	}
	width, height, err := xterm.GetSize(fd)
	if err != nil {
		return nil
	}

	w, h := cfg.ScreenSize()
	if width < w || height < h {
		return fmt.Errorf("terminal is %dx%d, the %dx%d board needs at least %dx%d",
			width, height, cfg.Board.Width, cfg.Board.Height, w, h)
	}
	return nil
}

func printSessionSummary(store *storage.Store, gameID string) {
	if store == nil {
		return
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return
	}
	fmt.Printf("Rounds played: %d, session best: %d\n", stats.GamesCount, stats.HighScore)
}
