package doctor

import (
	"context"
	"sync"
)

type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
	FirstBySpecialty(ctx context.Context, specialty string) (*Doctor, error)
}

// InMemoryRepo holds the roster in insertion order.
type InMemoryRepo struct {
	mu      sync.RWMutex
	doctors []*Doctor
	byID    map[string]*Doctor
}

func NewInMemoryRepo(doctors []*Doctor) *InMemoryRepo {
	r := &InMemoryRepo{byID: make(map[string]*Doctor, len(doctors))}
	for _, d := range doctors {
		r.doctors = append(r.doctors, d)
		r.byID[d.ID] = d
	}
	return r
}

func (r *InMemoryRepo) List(_ context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

func (r *InMemoryRepo) GetByID(_ context.Context, id string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

// FirstBySpecialty returns the first roster entry with the given specialty,
// preserving seed order.
func (r *InMemoryRepo) FirstBySpecialty(_ context.Context, specialty string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.Specialty == specialty {
			return d, nil
		}
	}
	return nil, ErrDoctorNotFound
}
