package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/turtle-adventure/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Print or check game configuration",
	Long: `Without arguments, print the built-in default configuration.
Save it to ~/.turtle/configs/turtle.yaml or ./configs/turtle.yaml to
customise the game; fields you leave out keep their defaults.

With a path, validate that file and report every problem found.

Examples:
  turtle config > ~/.turtle/configs/turtle.yaml
  turtle config ./my-turtle.yaml
  turtle config --effective`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration the game would load")
}

func runConfig(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 1:
		cfg, err := config.LoadTurtle(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%dx%d world, level %d)\n", args[0], cfg.World.Width, cfg.World.Height, cfg.Level)
		return nil

	case flagEffective:
		cfg, err := config.LoadTurtle("")
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	}

	_, err := os.Stdout.Write(config.DefaultYAML())
	return err
}
