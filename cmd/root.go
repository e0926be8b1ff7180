// cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sched"
	"github.com/schedsim/schedsim/sched/parallel"
	"github.com/schedsim/schedsim/sched/partition"
	"github.com/schedsim/schedsim/sched/simulate"
)

// inputErrorExitCode is returned for a malformed task file or invalid
// flag combination, kept distinct from the 0-4 schedulability verdict
// codes so callers can tell "we don't know" apart from "you gave us
// something we can't parse".
const inputErrorExitCode = 64

var (
	versionFlag   string
	heuristicFlag string
	orderingFlag  string
	workersFlag   int
	logLevelFlag  string
	configFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "schedsim FILE M",
	Short: "Real-time task set schedulability analyzer",
	Long: "schedsim decides whether a periodic task set is schedulable on M processors\n" +
		"under global EDF, partitioned EDF, or the EDF(k) hybrid, using analytic tests\n" +
		"where they apply and falling back to time-stepped simulation otherwise.",
	Args: cobra.ExactArgs(2),
	RunE: runSchedsim,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(inputErrorExitCode)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&versionFlag, "v", "v", "", "scheduling variant: 'global', 'partitioned', or an integer k for EDF(k)")
	rootCmd.Flags().StringVarP(&heuristicFlag, "h", "h", "", "partitioning heuristic: ff, nf, bf, wf (required when -v partitioned)")
	rootCmd.Flags().StringVarP(&orderingFlag, "s", "s", "", "partitioning task ordering: iu, du (required when -v partitioned)")
	rootCmd.Flags().IntVarP(&workersFlag, "w", "w", runtime.NumCPU(), "number of worker goroutines (default: number of CPUs)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "optional YAML file overriding the horizon ceiling and/or worker count")
	_ = rootCmd.MarkFlagRequired("v")
}

func runSchedsim(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevelFlag)
	if err != nil {
		return exitError(fmt.Errorf("invalid log level %q: %w", logLevelFlag, err))
	}
	logrus.SetLevel(level)

	file := args[0]
	m, err := strconv.Atoi(args[1])
	if err != nil || m <= 0 {
		return exitError(fmt.Errorf("M must be a positive integer, got %q", args[1]))
	}

	v, k, err := parseVariant(versionFlag)
	if err != nil {
		return exitError(err)
	}

	if v == variantPartitioned {
		if heuristicFlag == "" || orderingFlag == "" {
			return exitError(fmt.Errorf("-h and -s are required when -v partitioned is selected"))
		}
		if !validHeuristic(heuristicFlag) {
			return exitError(fmt.Errorf("invalid -h value %q, must be one of ff, nf, bf, wf", heuristicFlag))
		}
		if orderingFlag != string(partition.IncreasingUtilization) && orderingFlag != string(partition.DecreasingUtilization) {
			return exitError(fmt.Errorf("invalid -s value %q, must be one of iu, du", orderingFlag))
		}
	}

	runCfg, err := loadRunConfig(configFlag)
	if err != nil {
		return exitError(err)
	}
	workers := workersFlag
	if !cmd.Flags().Changed("w") {
		workers = runCfg.workerCount(workersFlag)
	}
	ceiling := runCfg.ceiling()

	ts, err := loadTaskSet(file)
	if err != nil {
		return exitError(err)
	}

	outcome, err := evaluate(ts, m, v, k, workers, ceiling)
	if err != nil {
		return exitError(err)
	}

	code := sched.ExitCode(outcome)
	logrus.Infof("verdict: %s, needs_simulation: %v, exit code: %d", outcome.Verdict, outcome.NeedsSimulation, code)
	os.Exit(code)
	return nil
}

func exitError(err error) error {
	logrus.Error(err)
	os.Exit(inputErrorExitCode)
	return err
}

type variant int

const (
	variantGlobal variant = iota
	variantPartitioned
	variantEDFk
)

func parseVariant(raw string) (variant, int, error) {
	switch raw {
	case "global":
		return variantGlobal, 0, nil
	case "partitioned":
		return variantPartitioned, 0, nil
	default:
		k, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("-v must be 'global', 'partitioned', or an integer for EDF(k), got %q", raw)
		}
		if k <= 0 {
			return 0, 0, fmt.Errorf("-v k value must be positive, got %d", k)
		}
		return variantEDFk, k, nil
	}
}

func validHeuristic(h string) bool {
	switch partition.Heuristic(h) {
	case partition.FirstFit, partition.NextFit, partition.BestFit, partition.WorstFit:
		return true
	default:
		return false
	}
}

// evaluate runs the full pipeline for the chosen variant and returns
// the aggregated outcome.
func evaluate(ts *sched.TaskSet, m int, v variant, k, workers int, ceiling int64) (sched.Outcome, error) {
	sched.Classify(ts)

	switch v {
	case variantPartitioned:
		return evaluatePartitioned(ts, m, workers, ceiling)
	case variantGlobal:
		return evaluateGlobal(ts, m, ceiling)
	case variantEDFk:
		return evaluateGlobalEDFk(ts, m, k, ceiling)
	default:
		panic("schedsim: unreachable variant")
	}
}

func evaluatePartitioned(ts *sched.TaskSet, m, workers int, ceiling int64) (sched.Outcome, error) {
	processors := partition.NewProcessors(m)
	ok := partition.Partition(ts, processors, partition.Ordering(orderingFlag), partition.Heuristic(heuristicFlag))
	if !ok {
		logrus.Info("partitioning failed: no processor had room for every task")
		return sched.Outcome{Verdict: sched.False}, nil
	}

	return parallel.Run(processors, parallel.Config{
		Ceiling: ceiling,
		Workers: workers,
		Logger:  logrus.StandardLogger(),
	}), nil
}

func evaluateGlobal(ts *sched.TaskSet, m int, ceiling int64) (sched.Outcome, error) {
	res := sched.AnalyticCheck(ts, m, sched.PolicyEDF)
	if !res.NeedsSimulation {
		return sched.Outcome{Verdict: res.Verdict}, nil
	}

	horizon, cannotTell, err := sched.SelectInterval(ts, sched.PolicyEDF, ceiling)
	if err != nil {
		return sched.Outcome{}, err
	}
	if cannotTell {
		return sched.Outcome{Verdict: sched.CannotTell, NeedsSimulation: true}, nil
	}

	timestep := sched.Timestep(ts.Tasks)
	outcome := simulate.RunGlobalEDF(ts, simulate.MultiConfig{
		Cores:    m,
		Horizon:  horizon,
		Timestep: timestep,
	}, nil)
	return outcome, nil
}

func evaluateGlobalEDFk(ts *sched.TaskSet, m, k int, ceiling int64) (sched.Outcome, error) {
	res := sched.AnalyticCheck(ts, m, sched.PolicyEDF)
	if !res.NeedsSimulation {
		return sched.Outcome{Verdict: res.Verdict}, nil
	}

	horizon, cannotTell, err := sched.SelectInterval(ts, sched.PolicyEDF, ceiling)
	if err != nil {
		return sched.Outcome{}, err
	}
	if cannotTell {
		return sched.Outcome{Verdict: sched.CannotTell, NeedsSimulation: true}, nil
	}

	timestep := sched.Timestep(ts.Tasks)
	outcome := simulate.RunGlobalEDFk(ts, k, simulate.MultiConfig{
		Cores:    m,
		Horizon:  horizon,
		Timestep: timestep,
	}, nil)
	return outcome, nil
}
