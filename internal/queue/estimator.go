package queue

import (
	"math"

	"github.com/vansh017/appointment-salon/internal/domain"
)

// An in_progress entry contributes half its duration to estimates. Elapsed
// time within the service is not tracked.
func weightedMinutes(e domain.QueueEntry) float64 {
	if e.Status == domain.StatusInProgress {
		return float64(e.DurationMinutes) / 2
	}
	return float64(e.DurationMinutes)
}

// EstimateWait sums the weighted durations of every active entry strictly
// ahead of the target by position. Pure function over a snapshot.
func EstimateWait(entries []domain.QueueEntry, entryID string) (int, error) {
	var target *domain.QueueEntry
	for i := range entries {
		if entries[i].ID == entryID {
			target = &entries[i]
			break
		}
	}
	if target == nil {
		return 0, domain.ErrEntryNotFound
	}

	var total float64
	for _, e := range entries {
		if e.Position < target.Position {
			total += weightedMinutes(e)
		}
	}
	return int(math.Ceil(total)), nil
}

// AverageWait is the ceiling of the weighted total over the active count.
// Returns 0 for an empty queue.
func AverageWait(entries []domain.QueueEntry) int {
	if len(entries) == 0 {
		return 0
	}
	var total float64
	for _, e := range entries {
		total += weightedMinutes(e)
	}
	return int(math.Ceil(total / float64(len(entries))))
}
