package doctor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jannashin6/docease/internal/platform/schedule"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// ScheduleConfig controls the availability window offered for booking.
type ScheduleConfig struct {
	HorizonDays     int
	SlotStartHour   int
	SlotEndHour     int
	SlotStepMinutes int
}

// DefaultScheduleConfig matches the practice's standard booking window:
// two weeks out, half-hour slots between 9 AM and 5 PM.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		HorizonDays:     14,
		SlotStartHour:   9,
		SlotEndHour:     17,
		SlotStepMinutes: 30,
	}
}

// Availability is the bookable window for one doctor.
type Availability struct {
	DoctorID  string                `json:"doctor_id"`
	Dates     []schedule.DateOption `json:"dates"`
	TimeSlots []schedule.SlotOption `json:"time_slots"`
}

type Service struct {
	doctors Repository
	sched   ScheduleConfig
	now     func() time.Time
}

func NewService(doctors Repository, sched ScheduleConfig) *Service {
	return &Service{doctors: doctors, sched: sched, now: time.Now}
}

// SetNowFunc overrides the clock, for tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.now = now
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) FirstBySpecialty(ctx context.Context, specialty string) (*Doctor, error) {
	return s.doctors.FirstBySpecialty(ctx, specialty)
}

// Search filters the roster by a case-insensitive term over name, specialty
// and bio, and by exact specialty. An empty term matches everything; an
// empty or "All" specialty disables the specialty filter.
func (s *Service) Search(ctx context.Context, term, specialty string) ([]*Doctor, error) {
	all, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	results := make([]*Doctor, 0, len(all))
	for _, d := range all {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialty), term) &&
			!strings.Contains(strings.ToLower(d.Bio), term) {
			continue
		}
		if specialty != "" && specialty != "All" && d.Specialty != specialty {
			continue
		}
		results = append(results, d)
	}
	return results, nil
}

// Specialties returns the unique specialties in roster order.
func (s *Service) Specialties(ctx context.Context) ([]string, error) {
	all, err := s.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	var specialties []string
	for _, d := range all {
		if seen[d.Specialty] {
			continue
		}
		seen[d.Specialty] = true
		specialties = append(specialties, d.Specialty)
	}
	return specialties, nil
}

// Availability generates the bookable dates and time slots for a doctor.
// An empty availability set on the doctor yields an empty date sequence.
func (s *Service) Availability(ctx context.Context, id string) (*Availability, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Availability{
		DoctorID:  d.ID,
		Dates:     schedule.AvailableDates(d.Availability, s.now(), s.sched.HorizonDays),
		TimeSlots: schedule.TimeSlots(s.sched.SlotStartHour, s.sched.SlotEndHour, s.sched.SlotStepMinutes),
	}, nil
}
