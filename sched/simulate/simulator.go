package simulate

import (
	"github.com/schedsim/schedsim/sched"
	"github.com/schedsim/schedsim/sched/plog"
)

// Config bundles the parameters a single uniprocessor simulation run
// needs beyond the task set itself.
type Config struct {
	Policy   sched.Policy
	Horizon  int64
	Timestep int64
	Log      *plog.Buffer // optional; nil discards diagnostics
}

func (c Config) logf(format string, args ...any) {
	if c.Log != nil {
		c.Log.Logf(format, args...)
	}
}

// Run simulates ts on a single processor under cfg, ticking from time 0
// to cfg.Horizon in steps of cfg.Timestep, following the per-tick
// protocol of §4.6: cancellation check, idle-point shortcut, release,
// deadline check, select, advance, rotate, tick. cancel is polled once
// per tick and, if already closed, yields CannotTell without running
// any further ticks.
func Run(ts *sched.TaskSet, cfg Config, cancel <-chan struct{}) sched.Outcome {
	selector := NewSelector(cfg.Policy)
	rotates := cfg.Policy == sched.PolicyRoundRobin

	var ready []*sched.Job
	var currentTime int64

	for currentTime < cfg.Horizon {
		select {
		case <-cancel:
			cfg.logf("stopped at time %d: another processor already failed", currentTime)
			return sched.Outcome{Verdict: sched.CannotTell, NeedsSimulation: true}
		default:
		}

		if ts.IsSynchronous && cfg.Policy == sched.PolicyEDF && len(ready) == 0 && currentTime > 0 {
			cfg.logf("EDF idle point at time %d, synchronous task set is schedulable", currentTime)
			return sched.Outcome{Verdict: sched.True, NeedsSimulation: true}
		}

		ready = append(ready, ts.ReleaseJobs(currentTime)...)

		for _, job := range ready {
			if job.DeadlineMissed(currentTime) {
				cfg.logf("deadline missed for task %d at time %d", job.TaskID, currentTime)
				return sched.Outcome{Verdict: sched.False, NeedsSimulation: true}
			}
		}

		if len(ready) > 0 {
			idx := selector.Select(ready)
			job := ready[idx]
			finished := job.Advance(cfg.Timestep)
			if finished {
				ready = removeAt(ready, idx)
			} else if rotates {
				ready = rotate(ready, idx)
			}
		}

		currentTime += cfg.Timestep
	}

	return sched.Outcome{Verdict: sched.True, NeedsSimulation: true}
}

// removeAt deletes the job at idx, preserving the relative order of
// the rest.
func removeAt(jobs []*sched.Job, idx int) []*sched.Job {
	return append(jobs[:idx], jobs[idx+1:]...)
}

// rotate moves the job at idx to the tail, preserving the order of the
// remaining jobs — the round-robin cursor advance.
func rotate(jobs []*sched.Job, idx int) []*sched.Job {
	job := jobs[idx]
	jobs = append(jobs[:idx], jobs[idx+1:]...)
	return append(jobs, job)
}
