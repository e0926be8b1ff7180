package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedsim/schedsim/sched"
)

func TestRunGlobalEDF_TwoCores_SchedulesConcurrentJobs(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 3, 4, 4),
		mustTask(t, 1, 0, 3, 4, 4),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	outcome := RunGlobalEDF(ts, MultiConfig{Cores: 2, Horizon: 8, Timestep: 1}, nil)

	assert.Equal(t, sched.True, outcome.Verdict)
}

func TestRunGlobalEDF_OneCoreInsufficientForTwoTightTasks_MissesDeadline(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 3, 4, 4),
		mustTask(t, 1, 0, 3, 4, 4),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	outcome := RunGlobalEDF(ts, MultiConfig{Cores: 1, Horizon: 8, Timestep: 1}, nil)

	assert.Equal(t, sched.False, outcome.Verdict)
}

func TestRunGlobalEDFk_PinnedTaskAlwaysRuns(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 0, 3, 4, 4), // highest utilization, pinned when k=1
		mustTask(t, 1, 0, 1, 8, 8),
	}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	outcome := RunGlobalEDFk(ts, 1, MultiConfig{Cores: 1, Horizon: 8, Timestep: 1}, nil)

	assert.Equal(t, sched.True, outcome.Verdict)
}

func TestRunGlobalEDF_CancelledBeforeStart_ReturnsCannotTell(t *testing.T) {
	tasks := []*sched.Task{mustTask(t, 0, 0, 1, 10, 10)}
	ts := sched.NewTaskSet(tasks)
	sched.Classify(ts)

	cancel := make(chan struct{})
	close(cancel)

	outcome := RunGlobalEDF(ts, MultiConfig{Cores: 2, Horizon: 10, Timestep: 1}, cancel)

	assert.Equal(t, sched.CannotTell, outcome.Verdict)
}
