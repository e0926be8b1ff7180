// Package parallel implements the per-processor worker pool of §4.7:
// one worker per processor, each running the synchronous-first analytic
// and simulation pipeline of a partitioned EDF verdict, sharing a
// single cooperative cancellation Signal so that one worker's
// infeasible result stops the others early.
//
// Grounded on the original driver's ThreadPoolExecutor/as_completed loop
// (original_source/Project2/src/main.py, process_processor and its
// nested preprocess_processor/simulate_processor helpers), translated
// to goroutines and channels, and on the teacher's logrus field-tagged
// logging idiom for per-worker diagnostics.
package parallel

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sched"
	"github.com/schedsim/schedsim/sched/partition"
	"github.com/schedsim/schedsim/sched/plog"
	"github.com/schedsim/schedsim/sched/simulate"
)

// Config bundles the parameters shared by every worker in a run.
type Config struct {
	Ceiling int64
	Workers int
	Logger  logrus.FieldLogger
}

// Run evaluates every processor's partitioned task set concurrently,
// bounded to cfg.Workers simultaneous workers, and aggregates their
// outcomes per sched.Aggregate. Each processor's diagnostics are
// flushed to cfg.Logger only after the worker finishes, so concurrent
// workers' log lines never interleave.
func Run(processors []*partition.Processor, cfg Config) sched.Outcome {
	if len(processors) == 0 {
		panic("parallel: Run called with no processors")
	}

	signal := NewSignal()
	sem := make(chan struct{}, workerCount(cfg.Workers))
	outcomes := make([]sched.Outcome, len(processors))

	var wg sync.WaitGroup
	for i, p := range processors {
		wg.Add(1)
		go func(i int, p *partition.Processor) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome := evaluateProcessor(p, cfg.Ceiling, signal)
			outcomes[i] = outcome
			if outcome.Verdict == sched.False {
				signal.Fire()
			}
		}(i, p)
	}
	wg.Wait()

	if cfg.Logger != nil {
		for _, p := range processors {
			plog.FlushTo(cfg.Logger, p.ID, p.Log)
		}
	}

	return sched.Aggregate(outcomes)
}

func workerCount(requested int) int {
	if requested <= 0 {
		return 1
	}
	return requested
}

// evaluateProcessor runs the synchronous-first analytic-then-simulation
// pipeline for a single processor's task set.
func evaluateProcessor(p *partition.Processor, ceiling int64, signal *Signal) sched.Outcome {
	original := p.TaskSet
	sched.Classify(original)

	synchronous := original.Synchronized()
	sched.Classify(synchronous)

	if res := sched.AnalyticCheck(synchronous, 1, sched.PolicyEDF); res.Verdict == sched.True {
		p.Log.Logf("synchronous preprocess passed for processor %d", p.ID)
		return sched.Outcome{Verdict: sched.True}
	}

	asyncRes := sched.AnalyticCheck(original, 1, sched.PolicyEDF)
	p.Log.Logf("preprocess passed for processor %d? %s", p.ID, asyncRes.Verdict)
	switch asyncRes.Verdict {
	case sched.True:
		return sched.Outcome{Verdict: sched.True}
	case sched.False:
		return sched.Outcome{Verdict: sched.False}
	}

	p.NeedsSimulation = true

	if outcome, ok := simulateTaskSet(synchronous, p, ceiling, signal); ok {
		if outcome.Verdict == sched.True {
			return outcome
		}
	}
	outcome, _ := simulateTaskSet(original, p, ceiling, signal)
	return outcome
}

// simulateTaskSet runs the time-stepped EDF simulation for ts. ok is
// false when the feasibility interval exceeds ceiling or cannot be
// computed (hyperperiod overflow), in which case outcome is already the
// CANNOT_TELL result to return.
func simulateTaskSet(ts *sched.TaskSet, p *partition.Processor, ceiling int64, signal *Signal) (outcome sched.Outcome, ok bool) {
	_, cannotTell, err := sched.SelectInterval(ts, sched.PolicyEDF, ceiling)
	if err != nil {
		p.Log.Logf("processor %d: %v", p.ID, err)
		return sched.Outcome{Verdict: sched.CannotTell, NeedsSimulation: true}, false
	}
	if cannotTell {
		return sched.Outcome{Verdict: sched.CannotTell, NeedsSimulation: true}, false
	}

	timestep := sched.Timestep(ts.Tasks)
	result := simulate.Run(ts, simulate.Config{
		Policy:   sched.PolicyEDF,
		Horizon:  ts.FeasibilityInterval,
		Timestep: timestep,
		Log:      p.Log,
	}, signal.Done())
	return result, true
}
