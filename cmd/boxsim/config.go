package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxsim/internal/config"
	"github.com/vovakirdan/boxsim/internal/scenes"
)

var flagEmbedded bool

var configCmd = &cobra.Command{
	Use:   "config [scene]",
	Short: "Print the resolved scene file",
	Long: `Load a scene file through the normal search order and print it as YAML.

Search order:
  1. --config <path>
  2. ~/.boxsim/scenes/<scene>.yaml
  3. ./scenes/<scene>.yaml
  4. Embedded default
  5. Hardcoded default

The scene defaults to "sandbox". Use --embedded to print the built-in file
as a starting point for a custom scene.

Examples:
  boxsim config
  boxsim config --embedded > my-scene.yaml
  boxsim config --config ./my-scene.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEmbedded, "embedded", false, "Print the embedded default file")
}

func runConfig(cmd *cobra.Command, args []string) {
	sceneID := "sandbox"
	if len(args) == 1 {
		sceneID = args[0]
	}

	if flagEmbedded {
		data := config.GetDefaultYAML(sceneID)
		if data == nil {
			fmt.Fprintf(os.Stderr, "Error: no embedded file for scene %q\n", sceneID)
			os.Exit(1)
		}
		fmt.Print(string(data))
		return
	}

	cfg, err := config.Load(sceneID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

// useSceneFile hands --config to the sandbox. The file is loaded once up
// front so a bad path fails the command instead of running the default scene.
// Other scenes ignore the flag.
func useSceneFile(sceneID string) error {
	if flagConfig == "" {
		return nil
	}
	if sceneID != "sandbox" {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Warning: --config only applies to the sandbox scene"))
		return nil
	}
	if _, err := config.Load(sceneID, flagConfig); err != nil {
		return err
	}
	scenes.SetConfigPath(flagConfig)
	return nil
}
