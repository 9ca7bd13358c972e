package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ertuSebu/salbp-solver/internal/albfile"
	"github.com/ertuSebu/salbp-solver/solver"
)

// newRootCmd builds the salbp-solve command tree: a single root command
// (no subcommands, unlike the teacher's multi-command CLI, since Entry B
// is one operation) with cycle-time and output-dir bound through viper so
// they may come from a flag or the SALBP_CYCLE_TIME/SALBP_OUTPUT_DIR
// environment variables, mirroring the teacher's v.AutomaticEnv() +
// BindPFlag discipline (pkg/config/config.go).
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SALBP")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "salbp-solve <instance.alb>",
		Short: "Solve a Simple Assembly Line Balancing Problem (type 1) instance exactly",
		Long: `salbp-solve reads a SALBP .alb instance file, computes the minimum number
of stations for the instance's fixed cycle time via the exact five-stage
solver (precedence closure, cocomparability graph, frontier enumeration,
pruned bidirectional BFS, path/station recovery), and writes a .sol
solution file alongside a timing .csv file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			cycleTime := v.GetInt("cycle_time")
			outputDir := v.GetString("output_dir")

			return runSolve(args[0], cycleTime, outputDir)
		},
	}

	cmd.Flags().Int("cycle-time", 0, "cycle time; overrides the .alb file's <cycle time> section if > 0")
	cmd.Flags().String("output-dir", ".", "directory for the .sol and .csv output files")
	v.BindPFlag("cycle_time", cmd.Flags().Lookup("cycle-time"))
	v.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))

	return cmd
}

// runSolve implements the original's main(): load, solve, write solution
// and timing files, matching optimum.c's control flow (file open -> parse
// -> solve_instance -> write .sol -> write .csv).
func runSolve(inputPath string, cycleTimeOverride int, outputDir string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}
	defer f.Close()

	inst, err := albfile.Parse(f)
	if err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}

	cycleTime := inst.CycleTime
	if cycleTimeOverride > 0 {
		cycleTime = cycleTimeOverride
	}

	start := time.Now()
	res, err := solver.Solve(inst.N, inst.Durations, inst.Edges, cycleTime)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}

	solPath := filepath.Join(outputDir, base+".sol")
	solFile, err := os.Create(solPath)
	if err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}
	defer solFile.Close()
	if err := albfile.WriteSolution(solFile, res); err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}

	csvPath := filepath.Join(outputDir, base+".csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}
	defer csvFile.Close()
	if err := albfile.WriteTimingCSV(csvFile, filepath.Base(inputPath), elapsed); err != nil {
		return fmt.Errorf("salbp-solve: %w", err)
	}

	fmt.Fprintf(os.Stderr, "stations: %d\n", res.Stations())

	return nil
}

// exitCodeFor maps a failure to a distinct positive process exit code per
// solver.ErrorKind (3..7), in place of optimum.c's negative solve_instance
// return codes; an .alb parse error (missing <number of tasks> or <cycle
// time>, task id out of range) exits 2, and any other error exits 1.
func exitCodeFor(err error) int {
	kind, ok := solver.KindOf(err)
	if !ok {
		var albErr error = err
		if errors.Is(albErr, albfile.ErrMissingNumberOfTasks) || errors.Is(albErr, albfile.ErrMissingCycleTime) || errors.Is(albErr, albfile.ErrTaskIDOutOfRange) {
			return 2
		}

		return 1
	}

	switch kind {
	case solver.KindInvalidInstance:
		return 3
	case solver.KindAllocationFailure:
		return 4
	case solver.KindSourceNotFound:
		return 5
	case solver.KindSinkNotFound:
		return 6
	case solver.KindNoPath:
		return 7
	default:
		return 1
	}
}
