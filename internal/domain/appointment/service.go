package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jannashin6/docease/internal/domain/doctor"
	"github.com/jannashin6/docease/internal/domain/patient"
	"github.com/jannashin6/docease/internal/platform/schedule"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrMissingDateTime     = errors.New("both a date and a time are required")
	ErrDateUnavailable     = errors.New("the doctor is not available on that date")
	ErrTimeUnavailable     = errors.New("that time is outside the bookable slot grid")
)

// Doctors resolves doctor ids; satisfied by doctor.Service.
type Doctors interface {
	Get(ctx context.Context, id string) (*doctor.Doctor, error)
}

// Session is the current-user surface the booking flow needs; satisfied by
// patient.Service.
type Session interface {
	Current() (*patient.User, error)
	AttachAppointment(id string)
}

// BookingRequest is a request to book a concrete slot with a doctor.
type BookingRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Notes    string `json:"notes"`
}

// TabbedList mirrors the appointments view: scheduled future appointments
// under Upcoming, everything else under Past.
type TabbedList struct {
	Upcoming []*Appointment `json:"upcoming"`
	Past     []*Appointment `json:"past"`
}

type Service struct {
	appointments Repository
	doctors      Doctors
	session      Session
	sched        doctor.ScheduleConfig
	logger       zerolog.Logger
	now          func() time.Time
}

func NewService(appointments Repository, doctors Doctors, session Session, sched doctor.ScheduleConfig, logger zerolog.Logger) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
		session:      session,
		sched:        sched,
		logger:       logger,
		now:          time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.now = now
}

// Book creates a scheduled appointment for the session user. The chosen
// date must fall on one of the doctor's available weekdays within the
// booking horizon, and the time must be one of the offered slots.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if req.Date == "" || req.Time == "" {
		return nil, ErrMissingDateTime
	}

	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}

	d, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	if !dateOffered(d.Availability, s.now(), s.sched.HorizonDays, req.Date) {
		return nil, ErrDateUnavailable
	}
	if !slotOffered(s.sched, req.Time) {
		return nil, ErrTimeUnavailable
	}

	a := &Appointment{
		ID:        uuid.New().String(),
		DoctorID:  d.ID,
		PatientID: user.ID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    StatusScheduled,
		Notes:     req.Notes,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	s.session.AttachAppointment(a.ID)

	s.logger.Info().
		Str("appointment_id", a.ID).
		Str("doctor_id", a.DoctorID).
		Str("date", a.Date).
		Str("time", a.Time).
		Msg("appointment booked")
	return a, nil
}

// Cancel moves a scheduled appointment to cancelled. The transition is
// one-way and idempotent in visible effect: cancelling an appointment that
// is already cancelled (or completed) returns it unchanged.
func (s *Service) Cancel(ctx context.Context, id string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusScheduled {
		return a, nil
	}

	a.Status = StatusCancelled
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Str("appointment_id", a.ID).Msg("appointment cancelled")
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// ListForCurrentUser splits the session user's appointments into the
// upcoming and past tabs: upcoming holds scheduled appointments dated today
// or later sorted ascending, past holds the rest sorted descending.
func (s *Service) ListForCurrentUser(ctx context.Context) (*TabbedList, error) {
	user, err := s.session.Current()
	if err != nil {
		return nil, err
	}

	all, err := s.appointments.ListByPatient(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(schedule.DateValueFormat)
	list := &TabbedList{Upcoming: []*Appointment{}, Past: []*Appointment{}}
	for _, a := range all {
		if a.Status == StatusScheduled && a.Date >= today {
			list.Upcoming = append(list.Upcoming, a)
		} else {
			list.Past = append(list.Past, a)
		}
	}

	sort.SliceStable(list.Upcoming, func(i, j int) bool {
		return list.Upcoming[i].Date < list.Upcoming[j].Date
	})
	sort.SliceStable(list.Past, func(i, j int) bool {
		return list.Past[i].Date > list.Past[j].Date
	})
	return list, nil
}

// dateOffered reports whether date is one of the values the availability
// generator would offer for this doctor right now.
func dateOffered(weekdays []string, now time.Time, horizonDays int, date string) bool {
	for _, opt := range schedule.AvailableDates(weekdays, now, horizonDays) {
		if opt.Value == date {
			return true
		}
	}
	return false
}

// slotOffered reports whether value is one of the generated time slots.
func slotOffered(sched doctor.ScheduleConfig, value string) bool {
	for _, slot := range schedule.TimeSlots(sched.SlotStartHour, sched.SlotEndHour, sched.SlotStepMinutes) {
		if slot.Value == value {
			return true
		}
	}
	return false
}
