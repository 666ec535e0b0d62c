package appointment

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
}

// InMemoryRepo keeps appointments in insertion order. Cancelled entries are
// never physically deleted.
type InMemoryRepo struct {
	mu    sync.RWMutex
	items []*Appointment
	byID  map[string]*Appointment
}

func NewInMemoryRepo(seed []*Appointment) *InMemoryRepo {
	r := &InMemoryRepo{byID: make(map[string]*Appointment, len(seed))}
	for _, a := range seed {
		copied := *a
		r.items = append(r.items, &copied)
		r.byID[copied.ID] = &copied
	}
	return r
}

func (r *InMemoryRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *a
	r.items = append(r.items, &copied)
	r.byID[copied.ID] = &copied
	return nil
}

func (r *InMemoryRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *InMemoryRepo) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[a.ID]
	if !ok {
		return ErrAppointmentNotFound
	}
	*stored = *a
	return nil
}

func (r *InMemoryRepo) ListByPatient(_ context.Context, patientID string) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Appointment
	for _, a := range r.items {
		if a.PatientID == patientID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *InMemoryRepo) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.items))
	for _, a := range r.items {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}
