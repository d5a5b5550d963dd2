package domain

import "time"

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var ActiveStatuses = []Status{StatusWaiting, StatusInProgress}

// IsActive reports whether an entry in this status still occupies the queue.
func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusInProgress
}

// Next returns the forward step of the lifecycle. Terminal statuses have none.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusWaiting:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// CanTransitionTo enforces the monotonic lifecycle:
// waiting -> in_progress -> completed, with cancellation allowed
// from either non-terminal status.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusWaiting:
		return to == StatusInProgress || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorOwner    Actor = "owner"
)

type QueueEntry struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shop_id"`
	CustomerID string    `json:"customer_id"`
	ServiceID  string    `json:"service_id"`
	// DurationMinutes and Price are copied from the shop's offering at
	// join time; later catalog changes never touch a queued entry.
	DurationMinutes int        `json:"duration_minutes"`
	Price           float64    `json:"price"`
	Position        int64      `json:"position"`
	Status          Status     `json:"status"`
	JoinedAt        time.Time  `json:"joined_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
}

// QueueSnapshot is an immutable copy of a shop's active queue, ordered by
// position. Version increases on every mutation so clients can detect
// staleness without diffing entries.
type QueueSnapshot struct {
	ShopID  string       `json:"shop_id"`
	Version int64        `json:"version"`
	Entries []QueueEntry `json:"entries"`
}

// QueueView is what clients see: the snapshot with estimates recomputed
// on every read.
type QueueView struct {
	ShopID             string           `json:"shop_id"`
	Version            int64            `json:"version"`
	AverageWaitMinutes int              `json:"average_wait_minutes"`
	Entries            []QueueEntryView `json:"entries"`
}

type QueueEntryView struct {
	QueueEntry
	WaitMinutes int `json:"wait_minutes"`
}

// ServiceRecord is the history row written when an entry completes.
type ServiceRecord struct {
	ID             string    `json:"id"`
	ShopID         string    `json:"shop_id"`
	CustomerID     string    `json:"customer_id"`
	ServiceID      string    `json:"service_id"`
	Price          float64   `json:"price"`
	ActualDuration int       `json:"actual_duration"`
	CompletedAt    time.Time `json:"completed_at"`
}
