package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagPlain bool
	flagRuns  bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recorded runs",
	Long: `Show the leaderboard. In a terminal this opens an interactive table
(tab switches between scores and recorded runs); otherwise, or with --plain,
a text listing is printed.

Examples:
  frogger scores
  frogger scores --plain --limit 5
  frogger scores --plain --runs`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "List recorded runs instead of scores (plain mode)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to print (plain mode)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, gameID, "Frogger", width, height)
	}

	if flagRuns {
		return printRuns(cmd.OutOrStdout(), store, flagLimit)
	}
	return printScores(cmd.OutOrStdout(), store, flagLimit)
}

func printScores(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Frogger")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'frogger play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %s\n", i+1, displayPlayer(e.Player), e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

func printRuns(out io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-6s  %-16s  %-8s  %-8s  %s\n", "Run", "Player", "Score", "Ticks", "Date")
	fmt.Fprintf(out, "  %-6s  %-16s  %-8s  %-8s  %s\n", "---", "------", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-6d  %-16s  %-8d  %-8d  %s\n", r.ID, displayPlayer(r.Player), r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func displayPlayer(p string) string {
	if p == "" {
		return "local"
	}
	return p
}
