// arcade runs the penguin bubble shooter in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: shooter)
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write debug logs to a file
//	--verbose          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-arcade/internal/games/shooter"
)

const defaultGame = "shooter"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Penguin Arcade - a bubble shooter in your terminal",
	Long: `Penguin Arcade is a terminal bubble shooter. Steer the penguin's
shooter, fire colored bubbles and pop groups of three or more.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade play
  arcade play --difficulty hard
  arcade serve --ssh :2222
  arcade scores --csv > scores.csv`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the TUI owns the terminal)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging opens the log file and hands the logger to the games.
// Without --log-file, play discards logs and serve logs to stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	case cmd == serveCmd:
		out = os.Stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	shooter.SetLogger(logger)
	return nil
}

// gameArg returns the game named on the command line, or the default game.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
