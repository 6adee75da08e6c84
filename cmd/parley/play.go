package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-parley/internal/config"
	"github.com/vovakirdan/tui-parley/internal/core"
	"github.com/vovakirdan/tui-parley/internal/platform/tui"
	"github.com/vovakirdan/tui-parley/internal/registry"
	"github.com/vovakirdan/tui-parley/internal/storage"
)

const defaultScene = "meadow"

var (
	flagConfig       string
	flagNoTranscript bool
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Play a scene",
	Long: `Start playing the specified scene (default: meadow).

Controls while walking:
  A/D, Left/Right  - Walk (hold)
  Space/W/Up       - Jump
  Tab              - Start talking
  H                - Print conversation history to the log
  Q/Ctrl+C         - Quit

Controls while talking:
  (type)           - Write a line
  Enter            - Say it
  Backspace        - Erase
  Esc              - Stop talking

Say "hello", "bye" or "sorry" and watch the Mage's mood.
Conversation lines go to the log file (see --log).

Examples:
  parley play
  parley play meadow --config ./my-scene.yaml
  parley play --log - --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	playCmd.Flags().BoolVar(&flagNoTranscript, "no-transcript", false, "Do not record the conversation")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := defaultScene
	if len(args) > 0 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'parley list' to see available scenes.")
		os.Exit(1)
	}

	// Load config up front so a broken --config fails before the screen switches
	sceneCfg, err := config.LoadScene(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		ConfigPath: flagConfig,
		Diag:       logOut,
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if !flagNoTranscript {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open transcript database: %v\n", err)
			// Continue without storage - the scene still works
			store = nil
		}
	}

	sessionID, runErr := tui.Run(scene, cfg, tui.Options{
		Store: store,
		User:  currentUser(),
		Input: sceneCfg.Input,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		log.Error("scene failed", "scene", sceneID, "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}

	if sessionID != "" {
		fmt.Printf("Transcript saved. View it with: parley transcripts %s\n", sessionID[:8])
	}
}

// currentUser returns the login name recorded with transcripts.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
