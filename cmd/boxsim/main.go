// boxsim runs deterministic box collision scenes from the command line.
//
// Usage:
//
//	boxsim list              - List available scenes
//	boxsim run <scene>       - Run a scene and print its final state
//	boxsim bench <scene>     - Measure throughput, optionally with a profile
//	boxsim config [scene]    - Print the resolved scene file
//	boxsim history <scene>   - Show recorded benchmark runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for randomized scenes
//	--cor <value>        - Set coefficient of restitution (default: 0.9)
//	--config <path>      - Custom scene file for the sandbox
//	--log-level <level>  - debug, info, warn or error
//	--db <path>          - Run history database (default: ~/.boxsim/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxsim/internal/core"
	"github.com/vovakirdan/boxsim/internal/runner"

	// Import scenes to register them
	_ "github.com/vovakirdan/boxsim/internal/scenes"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagCOR      float64
	flagWidth    int
	flagHeight   int
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxsim",
	Short: "boxsim - deterministic 2D box collisions",
	Long: `boxsim steps axis-aligned boxes with swept collision detection and
momentum-conserving response. Every run is reproducible: the same scene,
seed and flags always produce the same final state hash.

Available commands:
  list     - Show all available scenes
  run      - Run a scene and report its final state
  bench    - Benchmark a scene, optionally writing a profile
  config   - Print the resolved sandbox scene file
  history  - Show recorded benchmark runs

Examples:
  boxsim list
  boxsim run cradle --ticks 300
  boxsim run rain --seed 42 --bodies
  boxsim run sandbox --config ./my-scene.yaml --realtime
  boxsim bench pileup --profile cpu
  boxsim bench rain --record
  boxsim history rain`,
}

func init() {
	defaults := core.DefaultConfig()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Tick rate (ticks per simulated second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", defaults.Seed, "RNG seed for randomized scenes")
	rootCmd.PersistentFlags().Float64Var(&flagCOR, "cor", defaults.Restitution, "Coefficient of restitution")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", defaults.WorldW, "World width")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", defaults.WorldH, "World height")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sandbox scene YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxsim/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		WorldW:      flagWidth,
		WorldH:      flagHeight,
		TickRate:    flagFPS,
		Seed:        flagSeed,
		Restitution: flagCOR,
	}
}

// newLogger creates the stderr logger at the level set by --log-level.
func newLogger() *log.Logger {
	logger := runner.NewLogger(os.Stderr)
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)
	return logger
}
