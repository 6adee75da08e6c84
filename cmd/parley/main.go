// parley is a terminal scene where you walk a hero up to a Mage and talk.
// What the Mage says back depends on the words you keep using.
//
// Usage:
//
//	parley list                    - List available scenes
//	parley play [scene]            - Play a scene (default: meadow)
//	parley transcripts [session]   - Show recorded conversations
//	parley serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set transcript database (default: ~/.parley/transcripts.db)
//	--log <path>          - Set log file, "-" for stderr (default: ~/.parley/parley.log)
//	--log-level <level>   - Set log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-parley/internal/scenes/meadow"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string

	// logOut receives log entries and the scene's diagnostic lines.
	logOut  io.Writer = os.Stderr
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
	Use:   "parley",
	Short: "Parley - talk to a moody Mage in your terminal",
	Long: `Parley is a small terminal scene: walk your hero around a meadow,
jump, and strike up a conversation with the Mage. The Mage's mood follows
the words you use most, and so does the answer you get.

Available commands:
  list         - Show all available scenes
  play         - Play a scene
  transcripts  - Show recorded conversations
  serve        - Start SSH server for remote play

Examples:
  parley play
  parley play meadow --config ./my-scene.yaml
  parley transcripts
  parley serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging()
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.parley/transcripts.db", "Path to transcript database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.parley/parley.log", `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(transcriptsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging installs the default logger according to the global flags.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogPath != "-" {
		path, err := expandHome(flagLogPath)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logOut = f
	}

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "parley",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
