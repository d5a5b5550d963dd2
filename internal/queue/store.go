package queue

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vansh017/appointment-salon/internal/domain"
)

// Engine owns all live queue state, keyed by shop. Each shop's queue is the
// unit of mutual exclusion: mutations against one shop serialize on its own
// lock, shops never block one another. The outer RWMutex only guards the map
// itself.
type Engine struct {
	mu              sync.RWMutex
	shops           map[string]*shopQueue
	defaultCapacity int
}

type shopQueue struct {
	mu       sync.Mutex
	shopID   string
	capacity int
	seq      sequencer
	version  int64
	entries  []*domain.QueueEntry // position order, finished entries kept until eviction
	byID     map[string]*domain.QueueEntry
	active   map[string]string // customer id -> entry id, waiting/in_progress only
}

func NewEngine(defaultCapacity int) *Engine {
	if defaultCapacity < 1 {
		defaultCapacity = 1
	}
	return &Engine{
		shops:           make(map[string]*shopQueue),
		defaultCapacity: defaultCapacity,
	}
}

type JoinRequest struct {
	ShopID          string
	CustomerID      string
	ServiceID       string
	DurationMinutes int
	Price           float64
	// Capacity is the shop's concurrent service slots from reference data;
	// zero falls back to the engine default. Only honored when the shop's
	// queue is first created.
	Capacity int
}

// Join appends a waiting entry for the customer. If the customer already has
// an active entry in this shop's queue, a copy of that entry is returned
// together with ErrActiveEntryExists so callers can reconcile instead of
// retrying blindly.
func (e *Engine) Join(req JoinRequest) (*domain.QueueEntry, error) {
	sq := e.shop(req.ShopID, req.Capacity)

	sq.mu.Lock()
	defer sq.mu.Unlock()

	if id, ok := sq.active[req.CustomerID]; ok {
		existing := *sq.byID[id]
		return &existing, domain.ErrActiveEntryExists
	}

	entry := &domain.QueueEntry{
		ID:              uuid.New().String(),
		ShopID:          req.ShopID,
		CustomerID:      req.CustomerID,
		ServiceID:       req.ServiceID,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Position:        sq.seq.Next(),
		Status:          domain.StatusWaiting,
		JoinedAt:        time.Now().UTC(),
	}

	sq.entries = append(sq.entries, entry)
	sq.byID[entry.ID] = entry
	sq.active[entry.CustomerID] = entry.ID
	sq.version++

	out := *entry
	return &out, nil
}

// Advance moves the entry one step forward: waiting -> in_progress ->
// completed. Advancing into in_progress fails with ErrShopBusy while the
// shop is already serving at capacity.
func (e *Engine) Advance(shopID, entryID string) (*domain.QueueEntry, error) {
	sq := e.lookup(shopID)
	if sq == nil {
		return nil, domain.ErrEntryNotFound
	}

	sq.mu.Lock()
	defer sq.mu.Unlock()

	entry, ok := sq.byID[entryID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}

	next, ok := entry.Status.Next()
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	switch next {
	case domain.StatusInProgress:
		if sq.inProgressCount() >= sq.capacity {
			return nil, domain.ErrShopBusy
		}
		entry.Status = domain.StatusInProgress
		entry.StartedAt = &now
	case domain.StatusCompleted:
		entry.Status = domain.StatusCompleted
		entry.FinishedAt = &now
		delete(sq.active, entry.CustomerID)
	}
	sq.version++

	out := *entry
	return &out, nil
}

// Cancel terminates an active entry. Terminal entries fail with
// ErrInvalidTransition.
func (e *Engine) Cancel(shopID, entryID string) (*domain.QueueEntry, error) {
	sq := e.lookup(shopID)
	if sq == nil {
		return nil, domain.ErrEntryNotFound
	}

	sq.mu.Lock()
	defer sq.mu.Unlock()

	entry, ok := sq.byID[entryID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	if !entry.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	entry.Status = domain.StatusCancelled
	entry.FinishedAt = &now
	delete(sq.active, entry.CustomerID)
	sq.version++

	out := *entry
	return &out, nil
}

// Entry returns a copy of a single entry, active or finished-but-retained.
func (e *Engine) Entry(shopID, entryID string) (*domain.QueueEntry, error) {
	sq := e.lookup(shopID)
	if sq == nil {
		return nil, domain.ErrEntryNotFound
	}

	sq.mu.Lock()
	defer sq.mu.Unlock()

	entry, ok := sq.byID[entryID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	out := *entry
	return &out, nil
}

// Snapshot copies the active queue in position order. The copy is consistent
// with respect to concurrent mutations; it may lag an in-flight one.
func (e *Engine) Snapshot(shopID string) domain.QueueSnapshot {
	snap := domain.QueueSnapshot{ShopID: shopID, Entries: []domain.QueueEntry{}}

	sq := e.lookup(shopID)
	if sq == nil {
		return snap
	}

	sq.mu.Lock()
	defer sq.mu.Unlock()

	snap.Version = sq.version
	for _, entry := range sq.entries {
		if entry.Status.IsActive() {
			snap.Entries = append(snap.Entries, *entry)
		}
	}
	return snap
}

// Len reports the number of active entries in a shop's queue.
func (e *Engine) Len(shopID string) int {
	sq := e.lookup(shopID)
	if sq == nil {
		return 0
	}

	sq.mu.Lock()
	defer sq.mu.Unlock()
	return len(sq.active)
}

// Lengths reports active queue lengths for every shop with live state.
// Shops with no queue yet simply have no key.
func (e *Engine) Lengths() map[string]int {
	e.mu.RLock()
	shops := make([]*shopQueue, 0, len(e.shops))
	for _, sq := range e.shops {
		shops = append(shops, sq)
	}
	e.mu.RUnlock()

	out := make(map[string]int, len(shops))
	for _, sq := range shops {
		sq.mu.Lock()
		out[sq.shopID] = len(sq.active)
		sq.mu.Unlock()
	}
	return out
}

// EvictFinished drops completed and cancelled entries that finished before
// the cutoff. Completed ones are returned so callers can persist history.
// The active view is untouched, so versions are not bumped.
func (e *Engine) EvictFinished(cutoff time.Time) []domain.QueueEntry {
	e.mu.RLock()
	shops := make([]*shopQueue, 0, len(e.shops))
	for _, sq := range e.shops {
		shops = append(shops, sq)
	}
	e.mu.RUnlock()

	var completed []domain.QueueEntry
	for _, sq := range shops {
		sq.mu.Lock()
		kept := sq.entries[:0]
		for _, entry := range sq.entries {
			if entry.Status.IsActive() || entry.FinishedAt == nil || entry.FinishedAt.After(cutoff) {
				kept = append(kept, entry)
				continue
			}
			if entry.Status == domain.StatusCompleted {
				completed = append(completed, *entry)
			}
			delete(sq.byID, entry.ID)
		}
		sq.entries = kept
		sq.mu.Unlock()
	}
	return completed
}

func (e *Engine) shop(shopID string, capacity int) *shopQueue {
	e.mu.RLock()
	sq, ok := e.shops[shopID]
	e.mu.RUnlock()
	if ok {
		return sq
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if sq, ok = e.shops[shopID]; ok {
		return sq
	}

	if capacity < 1 {
		capacity = e.defaultCapacity
	}
	sq = &shopQueue{
		shopID:   shopID,
		capacity: capacity,
		byID:     make(map[string]*domain.QueueEntry),
		active:   make(map[string]string),
	}
	e.shops[shopID] = sq
	return sq
}

func (e *Engine) lookup(shopID string) *shopQueue {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.shops[shopID]
}

func (sq *shopQueue) inProgressCount() int {
	n := 0
	for _, id := range sq.active {
		if sq.byID[id].Status == domain.StatusInProgress {
			n++
		}
	}
	return n
}
