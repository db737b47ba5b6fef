// Package main provides the cyclebench CLI, which times every validation
// strategy of package cyclecheck against one input array.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/spf13/cobra"

	"github.com/Akron/cyclecheck"
	"github.com/Akron/cyclecheck/internal/fixture"
)

var version = "0.1.0"

func main() {
	log.AddFlags()
	if err := newRootCmd().Execute(); err != nil {
		log.Error.Printf("cyclebench: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cyclebench",
		Short:         "Benchmark strategies for validating a cyclic int32 pattern",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := cyclecheck.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "cyclebench v%s (block kernel: %s)\n", version, info.Kernel)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List validation strategies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range cyclecheck.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Validate one array with every strategy and report timings",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	runCmd.Flags().String("config", "", "YAML benchmark configuration")
	runCmd.Flags().String("input", "", "Fixture file to validate (default: generated pattern)")
	runCmd.Flags().Int("corrupt", -1, "Index to overwrite before validating (-1 = none)")
	runCmd.Flags().Int32("corrupt-value", 0, "Value written at --corrupt")
	runCmd.Flags().Int("repeat", 0, "Timed calls per strategy (0 = config value)")
	runCmd.Flags().Int("workers", 0, "Parallel worker count (0 = config value)")
	runCmd.Flags().StringSlice("only", nil, "Strategies to run (default: all)")
	rootCmd.AddCommand(runCmd)

	fixtureCmd := &cobra.Command{
		Use:   "fixture",
		Short: "Write a fixture file holding the pattern array",
		Args:  cobra.NoArgs,
		RunE:  runFixture,
	}
	fixtureCmd.Flags().String("config", "", "YAML benchmark configuration")
	fixtureCmd.Flags().String("out", "", "Output path")
	fixtureCmd.Flags().String("input", "", "Fixture file to re-encode (default: generated pattern)")
	fixtureCmd.Flags().Int("corrupt", -1, "Index to overwrite (-1 = none)")
	fixtureCmd.Flags().Int32("corrupt-value", 0, "Value written at --corrupt")
	_ = fixtureCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(fixtureCmd)

	return rootCmd
}

func loadBenchConfig(cmd *cobra.Command) (benchConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return defaultBenchConfig(), nil
	}
	return loadConfigFile(path)
}

// inputArray returns the array to validate: the fixture at --input or the
// generated pattern, with the --corrupt edit applied.
func inputArray(cmd *cobra.Command, cfg cyclecheck.Config) ([]int32, error) {
	var arr []int32
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		var err error
		if arr, err = fixture.ReadFile(path); err != nil {
			return nil, err
		}
		if len(arr) != cfg.Length {
			return nil, fmt.Errorf("%s holds %d values, configured length is %d", path, len(arr), cfg.Length)
		}
	} else {
		arr = fixture.Pattern(cfg)
	}
	idx, _ := cmd.Flags().GetInt("corrupt")
	if idx < 0 {
		return arr, nil
	}
	if idx >= len(arr) {
		return nil, fmt.Errorf("--corrupt %d out of range [0,%d)", idx, len(arr))
	}
	v, _ := cmd.Flags().GetInt32("corrupt-value")
	log.Printf("overwriting element %d (%d -> %d)", idx, arr[idx], v)
	return fixture.Corrupt(arr, idx, v), nil
}

// runConfig loads the configuration for the run command and applies the
// --workers and --repeat overrides.
func runConfig(cmd *cobra.Command) (benchConfig, error) {
	bc, err := loadBenchConfig(cmd)
	if err != nil {
		return bc, err
	}
	if n, _ := cmd.Flags().GetInt("workers"); n > 0 {
		bc.Workers = n
	}
	if n, _ := cmd.Flags().GetInt("repeat"); n > 0 {
		bc.Repeat = n
	}
	return bc, bc.Validate()
}

func runBench(cmd *cobra.Command, args []string) error {
	bc, err := runConfig(cmd)
	if err != nil {
		return err
	}

	arr, err := inputArray(cmd, bc.Config)
	if err != nil {
		return err
	}

	vs := cyclecheck.All(bc.Config)
	if only, _ := cmd.Flags().GetStringSlice("only"); len(only) > 0 {
		if vs, err = cyclecheck.Lookup(bc.Config, only...); err != nil {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(cyclecheck.Names(), ", "))
		}
	}

	info := cyclecheck.Info()
	log.Printf("validating %d elements: period %d, zones [0,%d) [%d,%d) [%d,%d), %d workers, block kernel %s",
		bc.Length, bc.Period, bc.PlusEnd, bc.PlusEnd, bc.MinusEnd, bc.MinusEnd, bc.Period, bc.Workers, info.Kernel)

	ms := cyclecheck.Harness{Repeat: bc.Repeat}.Run(vs, arr)
	if err := cyclecheck.WriteReport(cmd.OutOrStdout(), ms); err != nil {
		return err
	}
	if bad := cyclecheck.Disagreements(ms[0], ms[1:]); len(bad) > 0 {
		return fmt.Errorf("strategies disagree with %s: %s", ms[0].Name, strings.Join(bad, ", "))
	}
	return nil
}

func runFixture(cmd *cobra.Command, args []string) error {
	bc, err := loadBenchConfig(cmd)
	if err != nil {
		return err
	}
	arr, err := inputArray(cmd, bc.Config)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if err := fixture.WriteFile(out, arr); err != nil {
		return err
	}
	log.Printf("wrote %d values to %s", len(arr), out)
	return nil
}
