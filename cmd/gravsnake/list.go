package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-snake/internal/registry"
	"github.com/vovakirdan/gravity-snake/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties",
	Long:  `Shows every difficulty preset with its description and your best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No difficulties configured.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %4s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best", "Description")
	fmt.Printf("  %-*s  %-*s  %4s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "-----------")

	for _, g := range games {
		best := 0
		if store != nil {
			best, _ = store.HighScore(g.ID)
		}
		fmt.Printf("  %-*s  %-*s  %4d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'gravsnake play <id>' to play a difficulty.")
}
