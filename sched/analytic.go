// The ordered analytic feasibility tests: utilization-sum necessary
// condition, the trivial single-task case, the Liu-Layland bound for
// implicit-deadline fixed-priority, and the exact deadline-monotonic
// response-time recurrence. The first test that returns a definite
// answer wins; if none do, the caller must fall back to simulation.

package sched

import (
	"math"
	"sort"
)

// AnalyticResult is the outcome of running the ordered analytic tests.
type AnalyticResult struct {
	Verdict         Verdict
	NeedsSimulation bool
}

// AnalyticCheck runs the §4.4 tests in order against ts (already
// classified via Classify) for m identical processors under policy.
func AnalyticCheck(ts *TaskSet, m int, policy Policy) AnalyticResult {
	// 1. Necessary utilization bound.
	if ApproxGT(ts.TotalUtilization(), float64(m)) {
		return AnalyticResult{Verdict: False}
	}

	// 2. Trivial set.
	if len(ts.Tasks) <= 1 {
		return AnalyticResult{Verdict: True}
	}

	// 3. Liu-Layland: implicit-deadline, fixed-priority, uniprocessor.
	// Deadline-monotonic with implicit deadlines reduces to rate-monotonic,
	// which is exactly where this bound applies; round-robin and EDF are
	// not fixed-priority disciplines and do not get this shortcut.
	if m == 1 && ts.DeadlineType == DeadlineImplicit && policy == PolicyDeadlineMonotonic {
		n := len(ts.Tasks)
		bound := float64(n) * (math.Pow(2, 1.0/float64(n)) - 1)
		if ApproxLE(ts.TotalUtilization(), bound) {
			return AnalyticResult{Verdict: True}
		}
	}

	// 4. Deadline-monotonic exact response-time test.
	if m == 1 && policy == PolicyDeadlineMonotonic && (ts.DeadlineType == DeadlineImplicit || ts.DeadlineType == DeadlineConstrained) {
		if deadlineMonotonicFeasible(ts.Tasks) {
			return AnalyticResult{Verdict: True}
		}
		return AnalyticResult{Verdict: False}
	}

	// 5. EDF implicit-deadline synchronous uniprocessor.
	if m == 1 && policy == PolicyEDF && ts.IsSynchronous && ts.DeadlineType == DeadlineImplicit {
		if ApproxLE(ts.TotalUtilization(), 1.0) {
			return AnalyticResult{Verdict: True}
		}
	}

	return AnalyticResult{NeedsSimulation: true}
}

// deadlineMonotonicFeasible runs the exact worst-case response-time
// recurrence for every task, sorted by ascending deadline (deadline-
// monotonic priority order), without mutating the caller's task order.
func deadlineMonotonicFeasible(tasks []*Task) bool {
	sorted := make([]*Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Deadline < sorted[j].Deadline })

	for i, task := range sorted {
		higher := sorted[:i]
		r := task.Computation
		for {
			next := task.Computation
			for _, h := range higher {
				next += ceilDiv(r, h.Period) * h.Computation
			}
			if next > task.Deadline {
				return false
			}
			if next == r {
				break
			}
			r = next
		}
	}
	return true
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
