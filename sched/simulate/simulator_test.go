package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedsim/schedsim/sched"
)

func mustTask(t *testing.T, id int, offset, c, d, p int64) *sched.Task {
	t.Helper()
	task, err := sched.NewTask(id, "", offset, c, d, p)
	assert.NoError(t, err)
	return task
}

func TestRun_EDF_SchedulableImplicitDeadlineSet(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 1, 3, 3),
		mustTask(t, 1, 0, 2, 4, 4),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)
	hyper, err := sched.Hyperperiod(tasks)
	assert.NoError(t, err)

	outcome := Run(ts, Config{Policy: sched.PolicyEDF, Horizon: hyper, Timestep: 1}, nil)

	assert.Equal(t, sched.True, outcome.Verdict)
}

func TestRun_DeadlineMiss_ReturnsFalse(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 5, 3, 10),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	outcome := Run(ts, Config{Policy: sched.PolicyEDF, Horizon: 20, Timestep: 1}, nil)

	assert.Equal(t, sched.False, outcome.Verdict)
}

func TestRun_RoundRobin_RotatesUnfinishedJobToTail(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 4, 20, 20),
		mustTask(t, 1, 0, 1, 20, 20),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	outcome := Run(ts, Config{Policy: sched.PolicyRoundRobin, Horizon: 20, Timestep: 1}, nil)

	assert.Equal(t, sched.True, outcome.Verdict)
}

func TestRun_CancelledBeforeStart_ReturnsCannotTell(t *testing.T) {
	tasks := []*sched.Task{mustTask(t, 0, 0, 1, 10, 10)}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	cancel := make(chan struct{})
	close(cancel)

	outcome := Run(ts, Config{Policy: sched.PolicyEDF, Horizon: 10, Timestep: 1}, cancel)

	assert.Equal(t, sched.CannotTell, outcome.Verdict)
}

func TestRun_EDF_IdlePointShortcut_StopsEarly(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 1, 5, 5),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	outcome := Run(ts, Config{Policy: sched.PolicyEDF, Horizon: 1000, Timestep: 1}, nil)

	assert.Equal(t, sched.True, outcome.Verdict)
}
