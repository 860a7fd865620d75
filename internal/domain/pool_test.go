package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetCapacityDays_Floors(t *testing.T) {
	p := SprintPool{TotalCapacityDays: 200, BugReserve: 10, RefactorReserve: 15, OtherReserve: 5}
	// 200 * 0.70 = 140
	assert.Equal(t, 140, p.NetCapacityDays())

	p = SprintPool{TotalCapacityDays: 33, BugReserve: 10}
	// 33 * 0.90 = 29.7, floored
	assert.Equal(t, 29, p.NetCapacityDays())
}

func TestNetCapacityDays_NoReserves(t *testing.T) {
	p := SprintPool{TotalCapacityDays: 50}
	assert.Equal(t, 50, p.NetCapacityDays())
}

func TestReadiness_Schedulable(t *testing.T) {
	assert.False(t, ReadinessNotEvaluated.Schedulable())
	assert.True(t, ReadinessWorkloadEvaluated.Schedulable())
	assert.True(t, ReadinessPlanComplete.Schedulable())
}

func TestPool_Contains(t *testing.T) {
	p := SprintPool{ItemIDs: []string{"a", "b"}}
	assert.True(t, p.Contains("b"))
	assert.False(t, p.Contains("c"))
}
