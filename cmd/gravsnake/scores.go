package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-snake/internal/platform/tui"
	"github.com/vovakirdan/gravity-snake/internal/registry"
	"github.com/vovakirdan/gravity-snake/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top runs for a difficulty, or a summary of every
difficulty when none is given.

Examples:
  gravsnake scores
  gravsnake scores extreme
  gravsnake scores easy --limit 25
  gravsnake scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	id := ""
	if len(args) == 1 {
		id = args[0]
		if !registry.Exists(id) {
			return fmt.Errorf("unknown difficulty %q, run 'gravsnake list' to see them", id)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, id, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if id == "" {
		return printSummary(store)
	}
	return printTop(store, id)
}

func printTop(store *storage.Store, id string) error {
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	runs, err := store.TopScores(id, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gravsnake play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-15s  %s\n", "Rank", "Score", "Length", "Walls", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-15s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-5d  %-15s  %s\n",
			i+1, r.Score, r.Length, r.Walls, r.DeathCause, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("Summary")
	fmt.Println()
	fmt.Printf("  %-14s  %5s  %5s  %7s  %7s  %s\n", "Difficulty", "Runs", "Best", "Average", "Longest", "Last played")
	fmt.Printf("  %-14s  %5s  %5s  %7s  %7s  %s\n", "----------", "----", "----", "-------", "-------", "-----------")

	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-14s  %5d  %5s  %7s  %7s  %s\n", g.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-14s  %5d  %5d  %7.1f  %7d  %s\n",
			g.Title, st.RunsCount, st.HighScore, st.AvgScore, st.Longest, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	if len(all) == 0 {
		fmt.Println()
		fmt.Println("No runs recorded yet.")
	}
	return nil
}
