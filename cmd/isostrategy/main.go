// isostrategy computes optimal isogeny-tree traversal strategies.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/isostrategy/config"
	"github.com/tuneinsight/isostrategy/log"
)

const (
	flagLogLevel = "log-level"
	flagLogFile  = "log-file"
	flagLeaves   = "leaves"
	flagMul      = "mul"
	flagIso      = "iso"
)

var rootCmd = &cobra.Command{
	Use:           "isostrategy",
	Short:         "Optimal isogeny-tree traversal strategies",
	Long:          "Computes the optimal strategies used to walk the tree of intermediate points of a large smooth-degree isogeny computation.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compute the optimal strategy of one or more parameter sets",
	Long: `Compute the optimal strategy of each parameter set and print a report.

Parameter sets are read from a TOML configuration file, taken from a named preset
or given on the command line. Without any of them, all the presets are computed.
The costs --mul and --iso only apply to --leaves.

Examples:
  isostrategy generate --preset A
  isostrategy generate -n 10 -p 1 -q 1 --format json
  isostrategy generate --config isostrategy.toml --format cbor > strategies.cbor`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts generateOptions
		opts.ConfigFile, _ = cmd.Flags().GetString("config")
		opts.Preset, _ = cmd.Flags().GetString("preset")
		opts.LeafCount, _ = cmd.Flags().GetInt(flagLeaves)
		opts.MulCost, _ = cmd.Flags().GetFloat64(flagMul)
		opts.IsoCost, _ = cmd.Flags().GetFloat64(flagIso)
		opts.CostsSet = cmd.Flags().Changed(flagMul) || cmd.Flags().Changed(flagIso)
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.LogLevel, _ = cmd.Flags().GetString(flagLogLevel)
		opts.LogFile, _ = cmd.Flags().GetString(flagLogFile)
		return runGenerate(cmd.OutOrStdout(), &opts)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compute the optimal strategies over a range of cost ratios",
	Long: `Compute, for a fixed tree, the optimal strategy of each isogeny evaluation cost
q = ratio * p and print one line per ratio.

Ratios are listed explicitly or drawn at random. A seed makes the random ratios
reproducible.

Examples:
  isostrategy sweep -n 185 -p 11.2 --ratios 0.5,0.875,1,2
  isostrategy sweep -n 239 --random 8 --seed demo --min 0.25 --max 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts sweepOptions
		opts.LeafCount, _ = cmd.Flags().GetInt(flagLeaves)
		opts.MulCost, _ = cmd.Flags().GetFloat64(flagMul)
		opts.Ratios, _ = cmd.Flags().GetFloat64Slice("ratios")
		opts.Random, _ = cmd.Flags().GetInt("random")
		opts.Seed, _ = cmd.Flags().GetString("seed")
		opts.Min, _ = cmd.Flags().GetFloat64("min")
		opts.Max, _ = cmd.Flags().GetFloat64("max")
		opts.LogLevel, _ = cmd.Flags().GetString(flagLogLevel)
		opts.LogFile, _ = cmd.Flags().GetString(flagLogFile)
		return runSweep(cmd.OutOrStdout(), &opts)
	},
}

var walkCmd = &cobra.Command{
	Use:   "walk SEQUENCE",
	Short: "Replay a split sequence and count its operations",
	Long: `Replay the tree traversal driven by a comma-separated split sequence and print
the number of multiplications and isogeny evaluations it performs.

Example:
  isostrategy walk 0,1,1,2,2,2,3,4,4,4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mul, _ := cmd.Flags().GetFloat64(flagMul)
		iso, _ := cmd.Flags().GetFloat64(flagIso)
		return runWalk(cmd.OutOrStdout(), args[0], mul, iso)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(walkCmd)

	rootCmd.PersistentFlags().String(flagLogLevel, "", fmt.Sprintf("log level: %s (default %s)", strings.Join(log.Levels, ", "), config.DefaultLogLevel))
	rootCmd.PersistentFlags().String(flagLogFile, "", "file to write logs to (default: stderr)")

	// generate command flags
	generateCmd.Flags().String("config", "", "path to TOML configuration file")
	generateCmd.Flags().String("preset", "", "name of a preset parameter set")
	generateCmd.Flags().IntP(flagLeaves, "n", 0, "number of leaves of the tree")
	generateCmd.Flags().Float64P(flagMul, "p", 1, "cost of one multiplication")
	generateCmd.Flags().Float64P(flagIso, "q", 1, "cost of one isogeny evaluation")
	generateCmd.Flags().String("format", formatText, "output format: text, json or cbor")

	// sweep command flags
	sweepCmd.Flags().IntP(flagLeaves, "n", 0, "number of leaves of the tree (required)")
	sweepCmd.Flags().Float64P(flagMul, "p", 1, "cost of one multiplication")
	sweepCmd.Flags().Float64Slice("ratios", nil, "comma-separated isogeny evaluation to multiplication cost ratios")
	sweepCmd.Flags().Int("random", 0, "number of random ratios to draw instead of --ratios")
	sweepCmd.Flags().String("seed", "", "seed of the random ratios (default: system randomness)")
	sweepCmd.Flags().Float64("min", 0.25, "lower bound of the random ratios")
	sweepCmd.Flags().Float64("max", 4, "upper bound of the random ratios")
	_ = sweepCmd.MarkFlagRequired(flagLeaves)

	// walk command flags
	walkCmd.Flags().Float64P(flagMul, "p", 0, "cost of one multiplication, to print the cost of the walk")
	walkCmd.Flags().Float64P(flagIso, "q", 0, "cost of one isogeny evaluation, to print the cost of the walk")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
