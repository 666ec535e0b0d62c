package waitingqueue

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	Delete(ctx context.Context, id string) error
	ListByPatient(ctx context.Context, patientID string) ([]*Item, error)
	List(ctx context.Context) ([]*Item, error)
}

// InMemoryRepo keeps queue items in insertion order; removal deletes the
// entry entirely.
type InMemoryRepo struct {
	mu    sync.RWMutex
	items []*Item
}

func NewInMemoryRepo(seed []*Item) *InMemoryRepo {
	r := &InMemoryRepo{}
	for _, item := range seed {
		copied := *item
		r.items = append(r.items, &copied)
	}
	return r
}

func (r *InMemoryRepo) Create(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *InMemoryRepo) GetByID(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *InMemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepo) ListByPatient(_ context.Context, patientID string) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Item
	for _, item := range r.items {
		if item.PatientID == patientID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryRepo) List(_ context.Context) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Item, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}
