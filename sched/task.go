// Defines Task, Job, and TaskSet: the immutable task description, the
// mutable in-flight job it releases, and the ordered collection the
// rest of the pipeline annotates during preprocessing.

package sched

import "fmt"

// Task is immutable once created. It releases jobs at O, O+T, O+2T, ….
type Task struct {
	ID          int
	Name        string
	Offset      int64 // O >= 0
	Computation int64 // C > 0
	Deadline    int64 // D > 0
	Period      int64 // T > 0
}

// NewTask validates and constructs a Task. C, D, and T must be strictly
// positive; O must be non-negative.
func NewTask(id int, name string, offset, computation, deadline, period int64) (*Task, error) {
	if offset < 0 {
		return nil, fmt.Errorf("task %d (%s): offset must be >= 0, got %d", id, name, offset)
	}
	if computation <= 0 {
		return nil, fmt.Errorf("task %d (%s): computation time must be > 0, got %d", id, name, computation)
	}
	if deadline <= 0 {
		return nil, fmt.Errorf("task %d (%s): deadline must be > 0, got %d", id, name, deadline)
	}
	if period <= 0 {
		return nil, fmt.Errorf("task %d (%s): period must be > 0, got %d", id, name, period)
	}
	return &Task{ID: id, Name: name, Offset: offset, Computation: computation, Deadline: deadline, Period: period}, nil
}

// Utilization returns C/T.
func (t *Task) Utilization() float64 {
	return float64(t.Computation) / float64(t.Period)
}

func (t *Task) String() string {
	return fmt.Sprintf("%s: C=%d D=%d T=%d O=%d U=%.3f", t.Name, t.Computation, t.Deadline, t.Period, t.Offset, t.Utilization())
}

// ReleaseJob returns the job released at time t, or nil if the task
// releases nothing at t (either t is before the offset, or t is not on
// a release boundary).
func (t *Task) ReleaseJob(at int64) *Job {
	if at < t.Offset {
		return nil
	}
	if (at-t.Offset)%t.Period != 0 {
		return nil
	}
	return &Job{
		TaskID:           t.ID,
		ReleaseTime:      at,
		AbsoluteDeadline: at + t.Deadline,
		Remaining:        t.Computation,
		StaticDeadline:   t.Deadline,
		Period:           t.Period,
	}
}

// Job represents an outstanding instance of a task. Remaining is
// monotonically non-increasing while the job is active; once it
// reaches zero the job is removed by the simulator.
type Job struct {
	TaskID           int
	ReleaseTime      int64
	AbsoluteDeadline int64
	Remaining        int64 // 0 <= Remaining <= task's Computation
	StaticDeadline   int64 // the releasing task's D; used by deadline-monotonic selection
	Period           int64 // the releasing task's T; used by rate-monotonic selection
	Priority         float64 // scratch field used by the EDF(k) simulation (simulate.RunGlobalEDFk); unused otherwise
}

// DeadlineMissed reports whether the job has missed its deadline as of t.
func (j *Job) DeadlineMissed(t int64) bool {
	return t > j.AbsoluteDeadline
}

// Advance reduces the job's remaining time by delta and reports whether
// the job has completed (Remaining reached zero). Remaining never goes
// negative: a job with less than delta remaining finishes exactly.
func (j *Job) Advance(delta int64) (finished bool) {
	if j.Remaining <= delta {
		j.Remaining = 0
		return true
	}
	j.Remaining -= delta
	return false
}

// DeadlineType classifies a task set's deadline regime.
type DeadlineType string

const (
	DeadlineUnclassified DeadlineType = ""
	DeadlineImplicit     DeadlineType = "implicit"
	DeadlineConstrained  DeadlineType = "constrained"
	DeadlineArbitrary    DeadlineType = "arbitrary"
)

// TaskSet is an ordered (by insertion) collection of tasks plus the
// derived fields preprocessing establishes.
type TaskSet struct {
	Tasks []*Task

	IsSynchronous       bool
	DeadlineType        DeadlineType
	FeasibilityInterval int64
	SimulatorTimestep   int64
}

// NewTaskSet wraps tasks in an unclassified TaskSet. Classify (in
// classify.go) must run before the deadline-regime/synchrony fields are
// meaningful.
func NewTaskSet(tasks []*Task) *TaskSet {
	return &TaskSet{Tasks: tasks}
}

// ReleaseJobs returns every job released by any task in the set at
// time t, in task insertion order.
func (ts *TaskSet) ReleaseJobs(at int64) []*Job {
	var jobs []*Job
	for _, t := range ts.Tasks {
		if j := t.ReleaseJob(at); j != nil {
			jobs = append(jobs, j)
		}
	}
	return jobs
}

// TotalUtilization returns the sum of all tasks' utilizations.
func (ts *TaskSet) TotalUtilization() float64 {
	var sum float64
	for _, t := range ts.Tasks {
		sum += t.Utilization()
	}
	return sum
}

// Synchronized returns a copy of the task set with every task's offset
// forced to zero. Task identity (ID, Name) and timing are otherwise
// unchanged. The returned set is unclassified; Classify must run on it
// before use.
func (ts *TaskSet) Synchronized() *TaskSet {
	tasks := make([]*Task, len(ts.Tasks))
	for i, t := range ts.Tasks {
		cp := *t
		cp.Offset = 0
		tasks[i] = &cp
	}
	return NewTaskSet(tasks)
}

// MaxOffset returns the largest offset among the set's tasks.
func (ts *TaskSet) MaxOffset() int64 {
	var m int64
	for _, t := range ts.Tasks {
		if t.Offset > m {
			m = t.Offset
		}
	}
	return m
}

// MaxDeadline returns the largest task deadline among the set's tasks.
func (ts *TaskSet) MaxDeadline() int64 {
	var m int64
	for _, t := range ts.Tasks {
		if t.Deadline > m {
			m = t.Deadline
		}
	}
	return m
}

func (ts *TaskSet) String() string {
	s := "TaskSet:\nID\tName\tC\tT\tD\tO\tU\n"
	for _, t := range ts.Tasks {
		s += fmt.Sprintf("%d\t%s\t%d\t%d\t%d\t%d\t%.3f\n", t.ID, t.Name, t.Computation, t.Period, t.Deadline, t.Offset, t.Utilization())
	}
	return s
}
