package persistence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
)

// RequestRepository keeps the canonical collection in memory, newest first.
// All operations are serialized behind one mutex; reads hand out snapshot
// copies so callers can never observe a partially applied mutation.
type RequestRepository struct {
	mu     sync.RWMutex
	items  []request.Request
	lastID int64
	now    func() time.Time
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{now: time.Now}
}

// NewRequestRepositoryWithClock is used by tests that need deterministic ids
// and creation dates.
func NewRequestRepositoryWithClock(now func() time.Time) *RequestRepository {
	return &RequestRepository{now: now}
}

// nextID derives an id from the current unix-millisecond timestamp. Bursts
// within one millisecond bump past the last issued value so ids stay unique
// for the process lifetime. Callers must hold mu.
func (r *RequestRepository) nextID() string {
	ms := r.now().UnixMilli()
	if ms <= r.lastID {
		ms = r.lastID + 1
	}
	r.lastID = ms
	return fmt.Sprintf("REQ-%d", ms)
}

func (r *RequestRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *RequestRepository) GetAll(_ context.Context) ([]request.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]request.Request(nil), r.items...), nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (request.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID() == id {
			return item, nil
		}
	}
	return request.Request{}, request.ErrNotFound
}

func (r *RequestRepository) Find(_ context.Context, params *request.FindParams) ([]request.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return request.Filter(r.items, params), nil
}

func (r *RequestRepository) Create(_ context.Context, data request.Request) (request.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity := request.Hydrate(
		r.nextID(),
		data.Category(),
		data.Priority(),
		data.Status(),
		data.Description(),
		r.now().Format(request.DateLayout),
	)
	r.items = append([]request.Request{entity}, r.items...)
	return entity, nil
}

func (r *RequestRepository) Update(_ context.Context, data request.Request) (request.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID() == data.ID() {
			r.items[i] = data
			return data, nil
		}
	}
	return request.Request{}, request.ErrNotFound
}

func (r *RequestRepository) Delete(_ context.Context, id string) (request.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item, nil
		}
	}
	return request.Request{}, request.ErrNotFound
}
