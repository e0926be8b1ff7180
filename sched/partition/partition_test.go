package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedsim/schedsim/sched"
)

func mustTask(t *testing.T, id int, c, d, p int64) *sched.Task {
	t.Helper()
	task, err := sched.NewTask(id, "", 0, c, d, p)
	assert.NoError(t, err)
	return task
}

func TestPartition_FirstFit_PacksInOrder(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 6, 10, 10),
		mustTask(t, 1, 5, 10, 10),
		mustTask(t, 2, 4, 10, 10),
	}
	ts := sched.NewTaskSet(tasks)
	procs := NewProcessors(2)

	ok := Partition(ts, procs, IncreasingUtilization, FirstFit)

	assert.True(t, ok)
	assert.Equal(t, 3, len(procs[0].TaskSet.Tasks)+len(procs[1].TaskSet.Tasks))
}

func TestPartition_NextFit_NeverRevisitsEarlierProcessor(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 7, 10, 10),
		mustTask(t, 1, 2, 10, 10),
		mustTask(t, 2, 7, 10, 10),
	}
	ts := sched.NewTaskSet(tasks)
	procs := NewProcessors(2)

	ok := Partition(ts, procs, IncreasingUtilization, NextFit)

	assert.True(t, ok)
	assert.Equal(t, 2, len(procs[0].TaskSet.Tasks))
	assert.Equal(t, 1, len(procs[1].TaskSet.Tasks))
}

func TestPartition_BestFit_PrefersTightestEligibleProcessor(t *testing.T) {
	procs := NewProcessors(2)
	procs[0].Load = 0.5
	procs[1].Load = 0.2
	task := mustTask(t, 0, 3, 10, 10)
	ts := sched.NewTaskSet([]*sched.Task{task})

	ok := Partition(ts, procs, IncreasingUtilization, BestFit)

	assert.True(t, ok)
	assert.Equal(t, 1, len(procs[0].TaskSet.Tasks))
	assert.Equal(t, 0, len(procs[1].TaskSet.Tasks))
}

func TestPartition_WorstFit_PrefersLoosestEligibleProcessor(t *testing.T) {
	procs := NewProcessors(2)
	procs[0].Load = 0.5
	procs[1].Load = 0.2
	task := mustTask(t, 0, 3, 10, 10)
	ts := sched.NewTaskSet([]*sched.Task{task})

	ok := Partition(ts, procs, IncreasingUtilization, WorstFit)

	assert.True(t, ok)
	assert.Equal(t, 0, len(procs[0].TaskSet.Tasks))
	assert.Equal(t, 1, len(procs[1].TaskSet.Tasks))
}

func TestPartition_NoEligibleProcessor_ReturnsFalse(t *testing.T) {
	task := mustTask(t, 0, 9, 10, 10)
	ts := sched.NewTaskSet([]*sched.Task{task})
	procs := NewProcessors(1)
	procs[0].Load = 0.5

	ok := Partition(ts, procs, IncreasingUtilization, FirstFit)

	assert.False(t, ok)
}

func TestPartition_EmptyTaskSet_TriviallySucceeds(t *testing.T) {
	ts := sched.NewTaskSet(nil)
	procs := NewProcessors(3)

	ok := Partition(ts, procs, DecreasingUtilization, BestFit)

	assert.True(t, ok)
}

func TestPartition_ZeroProcessors_FailsOnNonEmptyTaskSet(t *testing.T) {
	task := mustTask(t, 0, 1, 10, 10)
	ts := sched.NewTaskSet([]*sched.Task{task})

	ok := Partition(ts, nil, IncreasingUtilization, FirstFit)

	assert.False(t, ok)
}

func TestPartition_DecreasingUtilization_OrdersLargestTaskFirst(t *testing.T) {
	tasks := []*sched.Task{
		mustTask(t, 0, 1, 10, 10),
		mustTask(t, 1, 9, 10, 10),
	}
	ts := sched.NewTaskSet(tasks)
	procs := NewProcessors(1)

	ok := Partition(ts, procs, DecreasingUtilization, FirstFit)

	assert.True(t, ok)
	assert.Equal(t, 1, procs[0].TaskSet.Tasks[0].ID)
}
