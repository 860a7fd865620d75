package engine

import (
	"math"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// Raw score bounds for the current weight tables.
const (
	MinRawScore = 3
	MaxRawScore = 26
)

// degenerateDisplayScore is assigned to every item when the batch has no
// raw-score spread (empty, single item, or all items tie).
const degenerateDisplayScore = 60

// businessValueWeight maps a business value tier to its fixed weight.
// Unknown tiers fall back to the lowest weight so legacy data scores
// instead of erroring.
func businessValueWeight(t domain.BusinessValueTier) int {
	switch t {
	case domain.ValueLocal:
		return 3
	case domain.ValueModerate:
		return 6
	case domain.ValueCoreLever:
		return 8
	case domain.ValueStrategicPlatform:
		return 10
	default:
		return 3
	}
}

// TimeCriticalityWeight maps a time window to its fixed weight. Exported
// because the unscheduled sort uses it as a tie-break key.
func TimeCriticalityWeight(t domain.TimeCriticality) int {
	switch t {
	case domain.TimeQuarterWindow:
		return 3
	case domain.TimeMonthHardWindow:
		return 5
	default: // anytime or unknown
		return 0
	}
}

// workloadBucketScore rewards small items so that splitting work pays off.
func workloadBucketScore(effortDays int) int {
	switch {
	case effortDays <= 5:
		return 6
	case effortDays <= 15:
		return 4
	case effortDays <= 30:
		return 2
	default:
		return 0
	}
}

// RawScore computes the auditable integer priority score from the
// requirement's categorical fields.
func RawScore(r domain.Requirement) int {
	score := businessValueWeight(r.BusinessValue)
	score += TimeCriticalityWeight(r.TimeCriticality)
	if r.HardDeadline {
		score += 5
	}
	score += workloadBucketScore(r.EffortDays)
	return score
}

// StarTier buckets a display score into the 2-5 star band.
func StarTier(displayScore int) int {
	switch {
	case displayScore >= 85:
		return 5
	case displayScore >= 70:
		return 4
	case displayScore >= 55:
		return 3
	default:
		return 2
	}
}

// Normalize computes raw, display, and star scores for the entire
// working batch and returns a fresh slice; the input is not mutated.
//
// The display score is batch-relative: it linearly rescales each raw
// score into [10,100] against the batch min/max, so editing one item can
// legitimately shift the displayed score of every other item. Callers
// must always pass the full batch, never a subset. The function is total
// and idempotent.
func Normalize(items []domain.Requirement) []domain.Requirement {
	out := make([]domain.Requirement, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out
	}

	minRaw, maxRaw := math.MaxInt, math.MinInt
	for i := range out {
		out[i].RawScore = RawScore(out[i])
		if out[i].RawScore < minRaw {
			minRaw = out[i].RawScore
		}
		if out[i].RawScore > maxRaw {
			maxRaw = out[i].RawScore
		}
	}

	for i := range out {
		if maxRaw == minRaw {
			out[i].DisplayScore = degenerateDisplayScore
		} else {
			span := float64(maxRaw - minRaw)
			out[i].DisplayScore = int(math.Round(10 + 90*float64(out[i].RawScore-minRaw)/span))
		}
		out[i].StarTier = StarTier(out[i].DisplayScore)
	}
	return out
}
