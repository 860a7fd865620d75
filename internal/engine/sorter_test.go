package engine

import (
	"testing"

	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/stretchr/testify/assert"
)

func makeUnscheduled(id string, displayScore, seq int) *domain.Requirement {
	return &domain.Requirement{
		ID:           id,
		DisplayScore: displayScore,
		Seq:          seq,
		Readiness:    domain.ReadinessWorkloadEvaluated,
	}
}

func TestSortUnscheduled_DisplayScoreDescending(t *testing.T) {
	items := []*domain.Requirement{
		makeUnscheduled("low", 20, 0),
		makeUnscheduled("high", 90, 1),
		makeUnscheduled("mid", 55, 2),
	}
	SortUnscheduled(items)

	assert.Equal(t, "high", items[0].ID)
	assert.Equal(t, "mid", items[1].ID)
	assert.Equal(t, "low", items[2].ID)
}

func TestSortUnscheduled_HardDeadlineBreaksScoreTie(t *testing.T) {
	soft := makeUnscheduled("soft", 60, 0)
	hard := makeUnscheduled("hard", 60, 1)
	hard.HardDeadline = true

	items := []*domain.Requirement{soft, hard}
	SortUnscheduled(items)

	assert.Equal(t, "hard", items[0].ID, "hard-deadline item sorts first on equal score")
}

func TestSortUnscheduled_TimeCriticalityBreaksDeadlineTie(t *testing.T) {
	anytime := makeUnscheduled("anytime", 60, 0)
	anytime.TimeCriticality = domain.TimeAnytime
	window := makeUnscheduled("window", 60, 1)
	window.TimeCriticality = domain.TimeMonthHardWindow

	items := []*domain.Requirement{anytime, window}
	SortUnscheduled(items)

	assert.Equal(t, "window", items[0].ID)
}

func TestSortUnscheduled_SmallerEffortBreaksRemainingTie(t *testing.T) {
	big := makeUnscheduled("big", 60, 0)
	big.EffortDays = 20
	small := makeUnscheduled("small", 60, 1)
	small.EffortDays = 3

	items := []*domain.Requirement{big, small}
	SortUnscheduled(items)

	assert.Equal(t, "small", items[0].ID)
}

func TestSortUnscheduled_StableFallbackToCreationOrder(t *testing.T) {
	first := makeUnscheduled("first", 60, 0)
	second := makeUnscheduled("second", 60, 1)

	items := []*domain.Requirement{second, first}
	SortUnscheduled(items)

	assert.Equal(t, "first", items[0].ID)
	assert.Equal(t, "second", items[1].ID)
}

func TestPartitionReady_NotEvaluatedExcluded(t *testing.T) {
	ready := makeUnscheduled("ready", 95, 0)
	pending := makeUnscheduled("pending", 99, 1)
	pending.Readiness = domain.ReadinessNotEvaluated

	readyOut, notReadyOut := PartitionReady([]*domain.Requirement{ready, pending})

	assert.Len(t, readyOut, 1)
	assert.Equal(t, "ready", readyOut[0].ID)
	assert.Len(t, notReadyOut, 1)
	assert.Equal(t, "pending", notReadyOut[0].ID, "not-ready partition is separate regardless of score")
}
