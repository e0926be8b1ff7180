// The feasibility-interval selector: the minimum simulation horizon for
// which the simulator's verdict is sound under the classified regime
// and chosen policy, plus the budget guard that turns an unreasonably
// large horizon into an indeterminate result instead of a long run.

package sched

// Policy is the uniprocessor scheduling discipline considered by the
// interval selector and the analytic tests. It is a closed set per
// design note §9 item 1.
type Policy string

const (
	PolicyRoundRobin      Policy = "rr"
	PolicyEDF             Policy = "edf"
	PolicyDeadlineMonotonic Policy = "dm"
)

// DefaultHorizonCeiling is the implementation-defined ceiling from
// §4.3. Horizons above this are reported as indeterminate rather than
// simulated. Callers needing a smaller ceiling (e.g. tests exercising
// the guard itself) can pass their own via SelectInterval.
const DefaultHorizonCeiling int64 = 10_000_000

// SelectInterval computes ts.FeasibilityInterval for the given policy
// and reports cannotTell=true if the resulting horizon exceeds ceiling
// — in which case FeasibilityInterval is left at its prior value and
// the caller must emit CANNOT_TELL without invoking the simulator.
// ts must already be classified (see Classify).
func SelectInterval(ts *TaskSet, policy Policy, ceiling int64) (horizon int64, cannotTell bool, err error) {
	hyper, err := Hyperperiod(ts.Tasks)
	if err != nil {
		return 0, false, err
	}

	if ts.IsSynchronous {
		switch ts.DeadlineType {
		case DeadlineImplicit, DeadlineConstrained:
			if policy == PolicyRoundRobin || policy == PolicyEDF {
				horizon = hyper
			} else {
				horizon = ts.MaxDeadline()
			}
		default: // arbitrary, or (defensively) unclassified
			horizon = hyper
		}
	} else {
		horizon = ts.MaxOffset() + 2*hyper
	}

	if horizon > ceiling {
		return horizon, true, nil
	}
	ts.FeasibilityInterval = horizon
	return horizon, false, nil
}
