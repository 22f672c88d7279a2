package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxsim/internal/registry"
	"github.com/vovakirdan/boxsim/internal/runner"
)

var (
	flagTicks    int
	flagRealtime bool
	flagBodies   bool
	flagProgress int
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Run a scene",
	Long: `Reset the specified scene, step it and print a summary of the final state.

By default the scene is stepped as fast as possible. With --realtime each
tick waits for the tick period set by --fps; --ticks 0 then runs until
interrupted. Ctrl+C stops a run early and still prints the report.

Examples:
  boxsim run cradle
  boxsim run wall --cor 0.5 --ticks 120 --bodies
  boxsim run rain --seed 7 --log-level debug --progress 60
  boxsim run sandbox --config ./my-scene.yaml --realtime --ticks 0`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks to the tick rate")
	runCmd.Flags().BoolVar(&flagBodies, "bodies", false, "Print every body in the final state")
	runCmd.Flags().IntVar(&flagProgress, "progress", 0, "Log a debug line every N ticks")
}

func runRun(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'boxsim list' to see available scenes.")
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

	r := runner.New(scene,
		runner.WithConfig(runtimeConfig()),
		runner.WithLogger(newLogger()),
		runner.WithProgress(flagProgress),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	var rep runner.Report
	if flagRealtime {
		rep, err = r.RunRealtime(ctx, flagTicks)
	} else {
		rep, err = r.Run(ctx, flagTicks)
	}
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width := termWidth()
	fmt.Println(renderReport(rep, width))
	if flagBodies {
		fmt.Println(renderBodies(rep.Snapshot, width))
	}
}
