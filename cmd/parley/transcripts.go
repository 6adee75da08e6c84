package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-parley/internal/dialogue"
	"github.com/vovakirdan/tui-parley/internal/platform/tui"
	"github.com/vovakirdan/tui-parley/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var transcriptsCmd = &cobra.Command{
	Use:   "transcripts [session-id]",
	Short: "Show recorded conversations",
	Long: `Without arguments, list the most recent play sessions.
With a session ID (or a unique prefix of one), print that conversation
line by line together with the Mage's replies.

Examples:
  parley transcripts
  parley transcripts --limit 5
  parley transcripts 3f2a9c1e
  parley transcripts --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTranscripts,
}

func init() {
	transcriptsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to list")
	transcriptsCmd.Flags().BoolVarP(&flagBrowse, "browse", "i", false, "Browse transcripts interactively")
}

func runTranscripts(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transcript database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunBrowser(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		printSessions(store)
		return
	}
	printTranscript(store, args[0])
}

func printSessions(store *storage.Store) {
	sessions, err := store.Sessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'parley play' and say something to the Mage!")
		return
	}

	fmt.Println("Recent sessions:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-12s  %-16s  %5s  %s\n", "Session", "Scene", "User", "Started", "Lines", "Mood")
	fmt.Printf("  %-8s  %-8s  %-12s  %-16s  %5s  %s\n", "-------", "-----", "----", "-------", "-----", "----")

	for _, s := range sessions {
		fmt.Printf("  %-8s  %-8s  %-12s  %-16s  %5d  %s\n",
			s.ID[:8], s.SceneID, s.User, s.StartedAt.Format("2006-01-02 15:04"), s.Lines, s.LastMood)
	}

	fmt.Println()
	fmt.Println("Run 'parley transcripts <session>' to read one.")
}

func printTranscript(store *storage.Store, prefix string) {
	id, err := store.FindSession(prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lines, err := store.Lines(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving transcript: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transcript %s\n", id)
	fmt.Println()

	if len(lines) == 0 {
		fmt.Println("Nothing was said in this session.")
		return
	}

	for _, l := range lines {
		fmt.Printf("  %3d  %s: %s\n", l.Seq, dialogue.PlayerLabel, l.Line)
		fmt.Printf("       [%s] %s\n", l.Mood, l.Reply)
	}

	tally, err := store.MoodTally(id)
	if err == nil {
		fmt.Println()
		fmt.Printf("Moods: %s\n", tui.FormatTally(tally))
	}
}
