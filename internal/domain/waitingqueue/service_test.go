package waitingqueue

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jannashin6/docease/internal/domain/doctor"
	"github.com/jannashin6/docease/internal/domain/patient"
)

// -- Mock session --

type mockSession struct {
	user     *patient.User
	attached []string
	detached []string
}

func (m *mockSession) Current() (*patient.User, error) {
	if m.user == nil {
		return nil, patient.ErrNotLoggedIn
	}
	u := *m.user
	return &u, nil
}

func (m *mockSession) AttachQueueItem(id string) {
	m.attached = append(m.attached, id)
}

func (m *mockSession) DetachQueueItem(id string) {
	m.detached = append(m.detached, id)
}

func newTestService(session *mockSession) *Service {
	doctors := doctor.NewService(doctor.NewInMemoryRepo(doctor.SeedDoctors()), doctor.DefaultScheduleConfig())
	svc := NewService(NewInMemoryRepo(SeedQueue()), doctors, session, zerolog.Nop())
	svc.SetNowFunc(func() time.Time {
		return time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	})
	return svc
}

func loggedInSession() *mockSession {
	return &mockSession{user: patient.SeedUser()}
}

func validJoin() JoinRequest {
	return JoinRequest{
		DoctorID:           "2",
		PreferredDates:     []string{"2025-03-13", "2025-03-15"},
		PreferredTimeSlots: []string{WindowMorning, WindowEvening},
		Reason:             "Recurring migraines",
	}
}

func TestJoin_Success(t *testing.T) {
	session := loggedInSession()
	svc := newTestService(session)

	item, err := svc.Join(context.Background(), validJoin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.PatientID != "user1" {
		t.Errorf("expected patient user1, got %s", item.PatientID)
	}
	if item.Priority != 1 {
		t.Errorf("expected default priority 1, got %d", item.Priority)
	}
	if item.RequestDate != "2025-03-10" {
		t.Errorf("expected request date 2025-03-10, got %s", item.RequestDate)
	}
	if len(session.attached) != 1 || session.attached[0] != item.ID {
		t.Errorf("expected item attached to session user, got %v", session.attached)
	}
}

func TestJoin_NotLoggedIn(t *testing.T) {
	svc := newTestService(&mockSession{})
	_, err := svc.Join(context.Background(), validJoin())
	if !errors.Is(err, patient.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestJoin_MissingFields(t *testing.T) {
	svc := newTestService(loggedInSession())

	req := validJoin()
	req.Reason = ""
	if _, err := svc.Join(context.Background(), req); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty reason, got %v", err)
	}

	req = validJoin()
	req.PreferredDates = nil
	if _, err := svc.Join(context.Background(), req); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for no dates, got %v", err)
	}
}

func TestJoin_InvalidWindow(t *testing.T) {
	svc := newTestService(loggedInSession())

	req := validJoin()
	req.PreferredTimeSlots = []string{"midnight"}
	if _, err := svc.Join(context.Background(), req); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestJoin_UnknownDoctor(t *testing.T) {
	svc := newTestService(loggedInSession())

	req := validJoin()
	req.DoctorID = "999"
	if _, err := svc.Join(context.Background(), req); !errors.Is(err, doctor.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestLeave_NotFound(t *testing.T) {
	svc := newTestService(loggedInSession())
	if err := svc.Leave(context.Background(), "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestJoinLeave_RoundTrip(t *testing.T) {
	session := loggedInSession()
	svc := newTestService(session)
	ctx := context.Background()

	before, _ := svc.queue.List(ctx)

	item, err := svc.Join(ctx, validJoin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Leave(ctx, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := svc.queue.List(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("queue membership not restored: before %d items, after %d", len(before), len(after))
	}
	if len(session.detached) != 1 || session.detached[0] != item.ID {
		t.Errorf("expected item detached from session user, got %v", session.detached)
	}
}

func TestListForCurrentUser(t *testing.T) {
	svc := newTestService(loggedInSession())

	items, err := svc.ListForCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Seed holds one entry for user1.
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("expected the seeded user1 item, got %d items", len(items))
	}
}
