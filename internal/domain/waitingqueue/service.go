package waitingqueue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jannashin6/docease/internal/domain/doctor"
	"github.com/jannashin6/docease/internal/domain/patient"
	"github.com/jannashin6/docease/internal/platform/schedule"
)

var (
	ErrItemNotFound  = errors.New("waiting queue item not found")
	ErrMissingFields = errors.New("preferred dates, time slots and a reason are required")
	ErrInvalidWindow = errors.New("preferred time slots must be morning, afternoon or evening")
)

var validWindows = map[string]bool{
	WindowMorning:   true,
	WindowAfternoon: true,
	WindowEvening:   true,
}

// Doctors resolves doctor ids; satisfied by doctor.Service.
type Doctors interface {
	Get(ctx context.Context, id string) (*doctor.Doctor, error)
}

// Session is the current-user surface the queue flow needs; satisfied by
// patient.Service.
type Session interface {
	Current() (*patient.User, error)
	AttachQueueItem(id string)
	DetachQueueItem(id string)
}

// JoinRequest asks to join a doctor's waiting queue.
type JoinRequest struct {
	DoctorID           string   `json:"doctor_id" validate:"required"`
	PreferredDates     []string `json:"preferred_dates" validate:"required,min=1"`
	PreferredTimeSlots []string `json:"preferred_time_slots" validate:"required,min=1"`
	Reason             string   `json:"reason" validate:"required"`
}

type Service struct {
	queue   Repository
	doctors Doctors
	session Session
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(queue Repository, doctors Doctors, session Session, logger zerolog.Logger) *Service {
	return &Service{
		queue:   queue,
		doctors: doctors,
		session: session,
		logger:  logger,
		now:     time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Join adds the session user to a doctor's waiting queue.
func (s *Service) Join(ctx context.Context, req JoinRequest) (*Item, error) {
	if len(req.PreferredDates) == 0 || len(req.PreferredTimeSlots) == 0 || req.Reason == "" {
		return nil, ErrMissingFields
	}
	for _, window := range req.PreferredTimeSlots {
		if !validWindows[window] {
			return nil, ErrInvalidWindow
		}
	}

	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}

	d, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	item := &Item{
		ID:                 uuid.New().String(),
		PatientID:          user.ID,
		DoctorID:           d.ID,
		PreferredDates:     req.PreferredDates,
		PreferredTimeSlots: req.PreferredTimeSlots,
		Reason:             req.Reason,
		Priority:           1,
		RequestDate:        s.now().Format(schedule.DateValueFormat),
	}
	if err := s.queue.Create(ctx, item); err != nil {
		return nil, err
	}
	s.session.AttachQueueItem(item.ID)

	s.logger.Info().
		Str("queue_item_id", item.ID).
		Str("doctor_id", item.DoctorID).
		Msg("joined waiting queue")
	return item, nil
}

// Leave removes an item from the queue entirely and detaches it from the
// session user.
func (s *Service) Leave(ctx context.Context, id string) error {
	if err := s.queue.Delete(ctx, id); err != nil {
		return err
	}
	s.session.DetachQueueItem(id)

	s.logger.Info().Str("queue_item_id", id).Msg("left waiting queue")
	return nil
}

// ListForCurrentUser returns the session user's queue items.
func (s *Service) ListForCurrentUser(ctx context.Context) ([]*Item, error) {
	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}
	items, err := s.queue.ListByPatient(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Item{}
	}
	return items, nil
}
