// Package partition implements the bin-packing partitioner of §4.5:
// four fit heuristics crossed with two orderings, assigning tasks to
// processors so that every processor's load stays within capacity.
//
// Grounded on the original Python partitioner (original_source/Project2/
// src/partitioner.py) for the heuristics themselves, and on the
// teacher's Processor/grouped-config idiom (sim/request.go,
// sim/config.go) for the Go shape.
package partition

import (
	"fmt"
	"sort"

	"github.com/schedsim/schedsim/sched"
	"github.com/schedsim/schedsim/sched/plog"
)

// Heuristic selects which eligible processor receives a task.
type Heuristic string

const (
	FirstFit Heuristic = "ff"
	NextFit  Heuristic = "nf"
	BestFit  Heuristic = "bf"
	WorstFit Heuristic = "wf"
)

// Ordering selects the order tasks are considered in.
type Ordering string

const (
	IncreasingUtilization Ordering = "iu"
	DecreasingUtilization Ordering = "du"
)

// Processor is a single core's assignment: its running load, the child
// task set bin-packed onto it, and its own append-only log buffer.
type Processor struct {
	ID       int
	Capacity float64
	Load     float64
	TaskSet  *sched.TaskSet
	Log      *plog.Buffer

	NeedsSimulation bool
}

func (p *Processor) String() string {
	return fmt.Sprintf("Processor %d (load %.4f)", p.ID, p.Load)
}

// NewProcessors returns m freshly initialized, empty processors with
// capacity 1.0.
func NewProcessors(m int) []*Processor {
	procs := make([]*Processor, m)
	for i := range procs {
		procs[i] = &Processor{
			ID:       i,
			Capacity: 1.0,
			TaskSet:  sched.NewTaskSet(nil),
			Log:      plog.New(),
		}
	}
	return procs
}

// Partition assigns ts's tasks across processors using heuristic and
// ordering. It reports false (partitioning failed, overall verdict
// INFEASIBLE) if any task has no eligible processor. On success every
// processor's load satisfies Σ U <= 1 (tolerant).
//
// ts is not mutated: Partition sorts and assigns a local copy of the
// task list.
func Partition(ts *sched.TaskSet, processors []*Processor, ordering Ordering, heuristic Heuristic) bool {
	if len(ts.Tasks) == 0 {
		return true
	}
	if len(processors) == 0 {
		return false
	}

	tasks := make([]*sched.Task, len(ts.Tasks))
	copy(tasks, ts.Tasks)
	switch ordering {
	case IncreasingUtilization:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Utilization() < tasks[j].Utilization() })
	case DecreasingUtilization:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Utilization() > tasks[j].Utilization() })
	}

	switch heuristic {
	case FirstFit:
		return firstFit(tasks, processors)
	case NextFit:
		return nextFit(tasks, processors)
	case BestFit:
		return bestFit(tasks, processors)
	case WorstFit:
		return worstFit(tasks, processors)
	default:
		return false
	}
}

func fits(p *Processor, u float64) bool {
	return sched.ApproxGE(p.Capacity-p.Load, u)
}

func assign(p *Processor, t *sched.Task) {
	p.TaskSet.Tasks = append(p.TaskSet.Tasks, t)
	p.Load += t.Utilization()
}

func firstFit(tasks []*sched.Task, processors []*Processor) bool {
	for _, t := range tasks {
		assigned := false
		for _, p := range processors {
			if fits(p, t.Utilization()) {
				assign(p, t)
				assigned = true
				break
			}
		}
		if !assigned {
			return false
		}
	}
	return true
}

// nextFit never revisits earlier processors: it consumes tasks while
// the current processor fits and advances otherwise, in a single pass.
func nextFit(tasks []*sched.Task, processors []*Processor) bool {
	remaining := tasks
	for _, p := range processors {
		for len(remaining) > 0 && fits(p, remaining[0].Utilization()) {
			assign(p, remaining[0])
			remaining = remaining[1:]
		}
	}
	return len(remaining) == 0
}

// bestFit assigns to the eligible processor with the largest current
// load (tightest fit); ties keep the first processor seen.
func bestFit(tasks []*sched.Task, processors []*Processor) bool {
	for _, t := range tasks {
		var best *Processor
		for _, p := range processors {
			if !fits(p, t.Utilization()) {
				continue
			}
			if best == nil || sched.ApproxGT(p.Load, best.Load) {
				best = p
			}
		}
		if best == nil {
			return false
		}
		assign(best, t)
	}
	return true
}

// worstFit assigns to the eligible processor with the smallest current
// load (loosest fit); ties keep the first processor seen.
func worstFit(tasks []*sched.Task, processors []*Processor) bool {
	for _, t := range tasks {
		var worst *Processor
		for _, p := range processors {
			if !fits(p, t.Utilization()) {
				continue
			}
			if worst == nil || sched.ApproxGT(worst.Load, p.Load) {
				worst = p
			}
		}
		if worst == nil {
			return false
		}
		assign(worst, t)
	}
	return true
}
