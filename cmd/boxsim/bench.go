package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxsim/internal/registry"
	"github.com/vovakirdan/boxsim/internal/runner"
	"github.com/vovakirdan/boxsim/internal/storage"
)

var (
	flagBenchTicks int
	flagBenchRuns  int
	flagProfile    string
	flagProfileDir string
	flagRecord     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <scene>",
	Short: "Benchmark a scene",
	Long: `Run a scene several times without pacing and report its throughput.

Every run must end in the same state hash; a mismatch means the simulation
is not deterministic and the command fails. With --record the fastest run is
saved to the history database, and a warning is printed when an earlier run
with the same parameters ended in a different state.

Profile modes:
  cpu     - CPU profile
  mem     - Heap profile
  allocs  - Allocation profile
  trace   - Execution trace

Examples:
  boxsim bench pileup
  boxsim bench rain --ticks 5000 --runs 5
  boxsim bench bouncybox --profile cpu --profile-dir ./prof
  boxsim bench cradle --record`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 2000, "Ticks per run")
	benchCmd.Flags().IntVar(&flagBenchRuns, "runs", 3, "Number of runs")
	benchCmd.Flags().StringVar(&flagProfile, "profile", "", "Profile mode: cpu, mem, allocs, trace")
	benchCmd.Flags().StringVar(&flagProfileDir, "profile-dir", ".", "Directory for profile output")
	benchCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the fastest run to the history database")
}

// profileMode maps a --profile value to a pkg/profile option.
func profileMode(name string) (func(*profile.Profile), error) {
	switch strings.ToLower(name) {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", name)
	}
}

func runBench(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'boxsim list' to see available scenes.")
		os.Exit(1)
	}
	if flagBenchRuns < 1 {
		fmt.Fprintln(os.Stderr, "Error: --runs must be at least 1")
		os.Exit(1)
	}

	if err := useSceneFile(sceneID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Per-run lines are noise here.
	logger := newLogger()
	if logger.GetLevel() < log.WarnLevel {
		logger.SetLevel(log.WarnLevel)
	}
	r := runner.New(scene, runner.WithConfig(runtimeConfig()), runner.WithLogger(logger))

	var prof interface{ Stop() }
	if flagProfile != "" {
		mode, err := profileMode(flagProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		prof = profile.Start(mode, profile.ProfilePath(flagProfileDir), profile.NoShutdownHook, profile.Quiet)
	}

	reports := make([]runner.Report, 0, flagBenchRuns)
	for range flagBenchRuns {
		rep, err := r.Run(context.Background(), flagBenchTicks)
		if err != nil {
			if prof != nil {
				prof.Stop()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		reports = append(reports, rep)
	}
	if prof != nil {
		prof.Stop()
		fmt.Printf("Wrote %s profile to %s\n\n", flagProfile, flagProfileDir)
	}

	fmt.Printf("%s: %d runs of %d ticks, %d bodies\n\n", titleStyle.Render(reports[0].Title), len(reports), flagBenchTicks, reports[0].Bodies)
	fmt.Printf("  %3s  %12s  %12s  %s\n", "Run", "Elapsed", "Ticks/s", "Hash")
	best := reports[0]
	for i, rep := range reports {
		fmt.Printf("  %3d  %12s  %12.0f  %016x\n", i+1, rep.Elapsed.Round(time.Microsecond), rep.TicksPerSecond(), rep.Hash)
		if rep.Elapsed < best.Elapsed {
			best = rep
		}
	}
	fmt.Println()
	fmt.Printf("Best: %.0f ticks/s\n", best.TicksPerSecond())

	for _, rep := range reports[1:] {
		if rep.Hash != reports[0].Hash {
			fmt.Fprintln(os.Stderr, warnStyle.Render("Error: runs ended in different states"))
			os.Exit(1)
		}
	}

	if flagRecord {
		recordRun(best)
	}
}

// recordRun saves rep to the history database and compares its hash with
// the last run recorded for the same parameters.
func recordRun(rep runner.Report) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cfg := runtimeConfig()
	rec := storage.RunRecord{
		SceneID:     rep.Scene,
		Ticks:       rep.Steps,
		Bodies:      rep.Bodies,
		Seed:        cfg.Seed,
		Restitution: cfg.Restitution,
		TickRate:    cfg.TickRate,
		Elapsed:     rep.Elapsed,
		TicksPerSec: rep.TicksPerSecond(),
		Hash:        rep.Hash,
	}

	prev, ok, err := store.LastHash(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		return
	}
	if ok && prev != rec.Hash {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Warning: final state differs from the last recorded run (%016x)", prev)))
	}

	if _, err := store.SaveRun(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Println("Run recorded.")
}
