package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedsim/schedsim/sched"
)

func job(taskID int, absDeadline, staticDeadline, period, remaining int64) *sched.Job {
	return &sched.Job{
		TaskID:           taskID,
		AbsoluteDeadline: absDeadline,
		StaticDeadline:   staticDeadline,
		Period:           period,
		Remaining:        remaining,
	}
}

func TestEDFSelector_PicksEarliestAbsoluteDeadline(t *testing.T) {
	ready := []*sched.Job{job(0, 10, 10, 10, 1), job(1, 5, 20, 20, 1), job(2, 15, 5, 5, 1)}
	assert.Equal(t, 1, EDFSelector{}.Select(ready))
}

func TestDMSelector_PicksShortestTaskDeadline(t *testing.T) {
	ready := []*sched.Job{job(0, 10, 10, 10, 1), job(1, 5, 20, 20, 1), job(2, 15, 5, 5, 1)}
	assert.Equal(t, 2, DMSelector{}.Select(ready))
}

func TestRMSelector_PicksShortestPeriod(t *testing.T) {
	ready := []*sched.Job{job(0, 10, 10, 10, 1), job(1, 5, 20, 20, 1), job(2, 15, 5, 5, 1)}
	assert.Equal(t, 2, RMSelector{}.Select(ready))
}

func TestRoundRobinSelector_AlwaysPicksHead(t *testing.T) {
	ready := []*sched.Job{job(0, 10, 10, 10, 1), job(1, 5, 20, 20, 1)}
	assert.Equal(t, 0, RoundRobinSelector{}.Select(ready))
}

func TestNewSelector_ReturnsMatchingImplementation(t *testing.T) {
	assert.IsType(t, EDFSelector{}, NewSelector(sched.PolicyEDF))
	assert.IsType(t, DMSelector{}, NewSelector(sched.PolicyDeadlineMonotonic))
	assert.IsType(t, RoundRobinSelector{}, NewSelector(sched.PolicyRoundRobin))
}
