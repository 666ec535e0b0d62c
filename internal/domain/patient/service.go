package patient

import (
	"errors"
	"sync"
)

// ErrNotLoggedIn is the precondition failure for operations that require a
// session user. Callers surface it as a redirect to the login flow, never as
// a fault.
var ErrNotLoggedIn = errors.New("not logged in")

// Service owns the session user. All mutation goes through its methods;
// nothing else holds an authoritative copy.
type Service struct {
	mu      sync.RWMutex
	current *User
}

// NewService starts the session with the given user (nil for logged out).
func NewService(current *User) *Service {
	return &Service{current: current}
}

// Current returns a copy of the session user, or ErrNotLoggedIn.
func (s *Service) Current() (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotLoggedIn
	}
	u := *s.current
	u.Appointments = append([]string(nil), s.current.Appointments...)
	u.WaitingQueue = append([]string(nil), s.current.WaitingQueue...)
	return &u, nil
}

// Login restores the simulated session user.
func (s *Service) Login() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.current = SeedUser()
	}
	u := *s.current
	return &u
}

// Logout clears the session user.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// AttachAppointment records an appointment id on the session user.
func (s *Service) AttachAppointment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.current.Appointments = append(s.current.Appointments, id)
}

// AttachQueueItem records a waiting-queue id on the session user.
func (s *Service) AttachQueueItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.current.WaitingQueue = append(s.current.WaitingQueue, id)
}

// DetachQueueItem removes a waiting-queue id from the session user.
func (s *Service) DetachQueueItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	kept := s.current.WaitingQueue[:0]
	for _, qid := range s.current.WaitingQueue {
		if qid != id {
			kept = append(kept, qid)
		}
	}
	s.current.WaitingQueue = kept
}
