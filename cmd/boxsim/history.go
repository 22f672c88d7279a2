package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxsim/internal/registry"
	"github.com/vovakirdan/boxsim/internal/storage"
)

var (
	flagFastest bool
	flagLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history <scene>",
	Short: "Show recorded benchmark runs for a scene",
	Long: `Display the benchmark runs saved with 'boxsim bench --record'.

Examples:
  boxsim history cradle
  boxsim history rain --fastest --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagFastest, "fastest", false, "Sort by throughput instead of date")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'boxsim list' to see available scenes.")
		os.Exit(1)
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}

	var runs []storage.RunRecord
	if flagFastest {
		runs, err = store.FastestRuns(sceneID, flagLimit)
	} else {
		runs, err = store.RecentRuns(sceneID, flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Benchmark history - %s\n", titleStyle.Render(scene.Title()))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'boxsim bench %s --record' to record one.\n", sceneID)
		return
	}

	// Print header
	fmt.Printf("  %-16s  %6s  %6s  %5s  %5s  %10s  %12s  %s\n",
		"Date", "Ticks", "Seed", "COR", "FPS", "Elapsed", "Ticks/s", "Hash")

	for _, r := range runs {
		fmt.Printf("  %-16s  %6d  %6d  %5.2f  %5d  %10s  %12.0f  %016x\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Ticks, r.Seed, r.Restitution, r.TickRate,
			r.Elapsed.Round(time.Microsecond), r.TicksPerSec, r.Hash)
	}

	stats, err := store.GetSceneStats(sceneID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %.0f ticks/s  Average: %.0f ticks/s\n", stats.Runs, stats.Best, stats.Average)
	}
}
