package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/math-arcade/internal/config"
)

var flagInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
	Long: `Settings are read from the first of:
  --config <path>
  ~/.mathcade/config.yaml
  ./configs/mathcade.yaml
  the built-in defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active settings",
	Long:  `Prints the settings games will use, after presets are applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default settings file",
	Long: `Writes the built-in defaults to ~/.mathcade/config.yaml, or to path.
An existing file is only replaced with --force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	_, source, err := config.LoadSource(flagConfig)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config.Active())
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.UserConfigPath()
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no home directory, pass a path")
	}

	if _, err := os.Stat(path); err == nil && !flagInitForce {
		return fmt.Errorf("%s already exists, use --force to replace it", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
