package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh017/appointment-salon/internal/domain"
)

func entry(id string, pos int64, duration int, status domain.Status) domain.QueueEntry {
	return domain.QueueEntry{ID: id, Position: pos, DurationMinutes: duration, Status: status}
}

func TestEstimateWait_SumsEntriesAhead(t *testing.T) {
	entries := []domain.QueueEntry{
		entry("a", 1, 30, domain.StatusWaiting),
		entry("b", 2, 45, domain.StatusWaiting),
	}

	got, err := EstimateWait(entries, "b")
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	got, err = EstimateWait(entries, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, got, "head of queue waits for nobody")
}

func TestEstimateWait_HalvesInProgress(t *testing.T) {
	entries := []domain.QueueEntry{
		entry("a", 1, 30, domain.StatusInProgress),
		entry("b", 2, 45, domain.StatusWaiting),
	}

	got, err := EstimateWait(entries, "b")
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestEstimateWait_OddInProgressRoundsUp(t *testing.T) {
	entries := []domain.QueueEntry{
		entry("a", 1, 45, domain.StatusInProgress),
		entry("b", 2, 30, domain.StatusWaiting),
	}

	got, err := EstimateWait(entries, "b")
	require.NoError(t, err)
	assert.Equal(t, 23, got, "22.5 rounds up, never under-promise")
}

func TestEstimateWait_UnknownEntry(t *testing.T) {
	_, err := EstimateWait([]domain.QueueEntry{entry("a", 1, 30, domain.StatusWaiting)}, "nope")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestAverageWait_EmptyQueue(t *testing.T) {
	assert.Equal(t, 0, AverageWait(nil))
}

func TestAverageWait_SingleWaitingEntry(t *testing.T) {
	entries := []domain.QueueEntry{entry("a", 1, 40, domain.StatusWaiting)}
	assert.Equal(t, 40, AverageWait(entries))
}

func TestAverageWait_CeilsWeightedMean(t *testing.T) {
	entries := []domain.QueueEntry{
		entry("a", 1, 30, domain.StatusInProgress), // 15
		entry("b", 2, 40, domain.StatusWaiting),    // 40
	}
	// (15 + 40) / 2 = 27.5 -> 28
	assert.Equal(t, 28, AverageWait(entries))
}
