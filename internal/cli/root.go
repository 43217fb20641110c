// Package cli provides the command-line interface for hueforge.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
	"github.com/hueforge/hueforge/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "hueforge",
		Short: "A harmonious colour palette generator",
		Long: `Hueforge derives complete, perceptually-uniform colour palettes from one
or more anchor colours.

Give it a hex colour and a harmony strategy and it produces a set of
matching hues, normalizes them in the OKLCH colour space, and expands
each base colour into an 11-step tint/shade ramp (50-950). Anchors can
also be pulled from an image's dominant colours.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				colour.DisableColourOutput = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colour output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newExtractCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger creates a command-scoped logger. Debug level when verbose is
// set, silent otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hueforge",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
}
