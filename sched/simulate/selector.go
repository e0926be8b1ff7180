// Package simulate implements the time-stepped discrete-event
// schedulability simulator of §4.6: a closed set of priority selectors
// (EDF, deadline-monotonic, rate-monotonic, round-robin) driving the
// uniprocessor tick loop, plus global EDF and EDF(k) multiprocessor
// tick loops that order their ready jobs by sorting instead.
//
// Grounded on the original Python scheduler (original_source/Project2/
// src/scheduling_functions.py, simulation_functions.py) for the
// selection rules and the per-tick protocol, adapted to the teacher's
// interface-driven variant style (sim uses strategy interfaces for its
// routing/admission policies rather than switch statements).
package simulate

import "github.com/schedsim/schedsim/sched"

// Selector picks the highest-priority job among ready (non-empty).
// Select is pure: it returns the chosen job's index into ready and must
// not mutate ready or any job. Rotation for round-robin is the
// simulator's responsibility, not the selector's, so that selection
// stays side-effect free and testable in isolation.
type Selector interface {
	// Select returns the index into ready of the job to run next.
	// ready is guaranteed non-empty.
	Select(ready []*sched.Job) int
}

// NewSelector returns the Selector for policy.
func NewSelector(policy sched.Policy) Selector {
	switch policy {
	case sched.PolicyEDF:
		return EDFSelector{}
	case sched.PolicyDeadlineMonotonic:
		return DMSelector{}
	case sched.PolicyRoundRobin:
		return RoundRobinSelector{}
	default:
		return EDFSelector{}
	}
}

// EDFSelector picks the job with the earliest absolute deadline, the
// first seen winning ties.
type EDFSelector struct{}

func (EDFSelector) Select(ready []*sched.Job) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].AbsoluteDeadline < ready[best].AbsoluteDeadline {
			best = i
		}
	}
	return best
}

// DMSelector picks the job whose owning task has the shortest relative
// deadline (its StaticDeadline), not the job's own absolute deadline.
type DMSelector struct{}

func (DMSelector) Select(ready []*sched.Job) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].StaticDeadline < ready[best].StaticDeadline {
			best = i
		}
	}
	return best
}

// RMSelector picks the job whose owning task has the shortest period.
// No sched.Policy value maps to it, so NewSelector never returns it;
// it is available for direct use by anyone embedding the package.
type RMSelector struct{}

func (RMSelector) Select(ready []*sched.Job) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if ready[i].Period < ready[best].Period {
			best = i
		}
	}
	return best
}

// RoundRobinSelector always selects the head of ready. The simulator
// rotates ready after each scheduled tick; the selector itself performs
// no rotation and has no state.
type RoundRobinSelector struct{}

func (RoundRobinSelector) Select(ready []*sched.Job) int {
	return 0
}
