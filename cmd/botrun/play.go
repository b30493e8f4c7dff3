package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/botrun/internal/audio"
	"github.com/vovakirdan/botrun/internal/core"
	"github.com/vovakirdan/botrun/internal/leaderboard"
	"github.com/vovakirdan/botrun/internal/platform/tui"
	"github.com/vovakirdan/botrun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start BotRun on the start screen.

Controls:
  Space/Up/W   - Jump (start on the start screen)
  P/Esc        - Pause
  Space/Enter  - Restart (after game over)
  Tab          - Edit player name
  H            - Run history
  C            - Clear high scores
  M            - Mute sound
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, wider spawn gaps, more hearts
  normal - Config defaults with progression on
  hard   - Faster start, tight spawn gaps, fewer hearts
  fixed  - No progression, stays at config's initial speed

Examples:
  botrun play
  botrun play --name robo
  botrun play --difficulty hard
  botrun play --config ./my-botrun.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (prompted when empty)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logFile = nil
	}
	logOut := os.Stderr
	if logFile != nil {
		logOut = logFile
		defer logFile.Close()
	}
	logger, err := newLogger(logOut, "botrun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the field width matches the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	scores, err := openScores(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores store: %v\n", err)
		// Continue with an in-memory board - the game still works
		scores = scoreStores{board: leaderboard.New(storage.NewMemoryStore(), logger)}
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	sound.SetMuted(flagMute)
	defer sound.Cleanup()

	runErr := tui.Run(tui.Options{
		Config:  gameCfg,
		Runtime: cfg,
		Name:    flagName,
		Board:   scores.board,
		Store:   scores.store,
		Sound:   sound,
		Logger:  logger,
	})

	// Close store before potential exit
	if closeErr := scores.Close(); closeErr != nil {
		logger.Warn("could not close scores store", "error", closeErr)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
