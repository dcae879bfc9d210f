// Package commands implements the CLI for the tracegen binary.
package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/koute/bytehound-replay/pkg/trace"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var opts = Options{}

var outputPath string

var rootCmd = &cobra.Command{
	Use:   "tracegen",
	Short: "Generate synthetic allocation traces",
	Long: `tracegen produces deterministic synthetic allocation traces for replay
fixtures and benchmarks: a seeded random workload of allocations, frees and
reallocations, with slot recycling and a random-walk backtrace emitted as
enter/exit frame deltas.

The same seed always produces byte-identical output.

Examples:
  # A small balanced fixture (replay restores all free space)
  tracegen -o fixture.trace --ops 1000 --balanced

  # A large leaky benchmark workload
  tracegen -o bench.trace --ops 5000000 --slots 100000 --leak 0.1`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output trace file (required)")
	rootCmd.Flags().Uint64Var(&opts.Ops, "ops", 10000, "Approximate number of allocation operations")
	rootCmd.Flags().Uint64Var(&opts.Slots, "slots", 1024, "Size of the slot identifier space")
	rootCmd.Flags().Int64Var(&opts.Seed, "seed", 1, "Random seed")
	rootCmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 32, "Maximum synthetic call depth")
	rootCmd.Flags().Float64Var(&opts.Leak, "leak", 0, "Fraction of allocations never freed (0.0 to 1.0)")
	rootCmd.Flags().BoolVar(&opts.Balanced, "balanced", false, "Free every live allocation before End")
	_ = rootCmd.MarkFlagRequired("output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := opts.validate(); err != nil {
		return err
	}

	w, err := trace.Create(outputPath, opts.Slots)
	if err != nil {
		return err
	}

	if err := Generate(w, opts, rand.New(rand.NewSource(opts.Seed))); err != nil {
		w.Close()
		return fmt.Errorf("generate trace: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outputPath)
	return nil
}
