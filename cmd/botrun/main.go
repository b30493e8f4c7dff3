// botrun is a side-scrolling runner for the terminal.
//
// Usage:
//
//	botrun play              - Play a run locally
//	botrun serve             - Start SSH server for remote play
//	botrun scores            - Show the top 3 and the run history
//	botrun config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.botrun/botrun.db)
//	--store <backend>     - Leaderboard backend: sqlite, file, memory
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/leaderboard"
	"github.com/vovakirdan/botrun/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagDataDir  string
	flagLogLevel string
)

// errUnknownDifficulty is returned for a --difficulty outside the presets.
var errUnknownDifficulty = errors.New("unknown difficulty")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "botrun",
	Short: "BotRun - jump the obstacles in your terminal",
	Long: `BotRun is a side-scrolling runner: your bot jumps over ground blocks,
water, enemies, spikes, flyers and bouncers while the sky turns from day
to dusk and storms make the ground slippery. Hearts grant a short
invincibility. The score grows with survival time and the best three
runs are kept.

Available commands:
  play     - Play a run locally
  serve    - Start SSH server for remote play
  scores   - View the top 3 and run history
  config   - Print the effective game config

Examples:
  botrun play
  botrun play --name robo --difficulty hard
  botrun serve --ssh :2222
  botrun scores --history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.botrun/botrun.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, "Leaderboard backend: sqlite, file, memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for the file backend (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the play log under the XDG state dir so the alt
// screen stays clean.
func openLogFile() (*os.File, error) {
	path, err := xdg.StateFile("botrun/botrun.log")
	if err != nil {
		return nil, fmt.Errorf("cannot resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadGameConfig loads the YAML config and applies a difficulty preset.
func loadGameConfig(path, difficulty string) (config.BotRunConfig, error) {
	cfg, err := config.LoadBotRun(path)
	if err != nil {
		return config.BotRunConfig{}, err
	}
	if difficulty == "" {
		return cfg, nil
	}

	preset := config.ParsePreset(difficulty)
	if preset == "" {
		return config.BotRunConfig{}, fmt.Errorf("%w %q (want easy, normal, hard or fixed)", errUnknownDifficulty, difficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// scoreStores is the opened leaderboard backend. store is non-nil only for
// the sqlite backend, which also keeps the run history.
type scoreStores struct {
	board  *leaderboard.Board
	store  *storage.Store
	closer io.Closer
}

func (s scoreStores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// openScores opens the --store backend and loads the leaderboard.
func openScores(logger *log.Logger) (scoreStores, error) {
	path := flagDBPath
	if flagStore == storage.BackendFile {
		path = flagDataDir
	}

	kv, closer, err := storage.OpenKV(flagStore, path)
	if err != nil {
		return scoreStores{}, err
	}

	store, _ := kv.(*storage.Store)
	board := leaderboard.New(kv, logger)
	board.Load()

	return scoreStores{board: board, store: store, closer: closer}, nil
}
