// Package sched provides the core schedulability-analysis engine: the
// task/job/task-set data model, the time-base primitives, the task-set
// classifier, the feasibility-interval selector, the analytic
// feasibility tests, and the tri-valued verdict/aggregation contract.
//
// # Reading Guide
//
// Start with these files to understand the analysis kernel:
//   - task.go: Task, Job, TaskSet — the data model (§3 of the design doc)
//   - timebase.go: hyperperiod, GCD timestep, tolerant float comparison
//   - classify.go: synchronous/asynchronous and deadline-regime classification
//   - interval.go: the feasibility-interval selector and its budget guard
//   - analytic.go: the ordered analytic shortcut tests
//   - verdict.go: the tri-valued Verdict, aggregation, and exit-code mapping
//
// # Architecture
//
// This package defines the data model and the parts of the pipeline that
// never need to touch wall-clock concurrency. Implementations that do —
// bin-packing, the time-stepped simulator, and the parallel per-processor
// driver — live in sub-packages:
//   - sched/partition/: task-to-processor bin-packing heuristics
//   - sched/simulate/: the time-stepped discrete-event simulator
//   - sched/parallel/: the per-processor worker pool and cancellation signal
//   - sched/plog/: the per-processor append-only log buffer
package sched
