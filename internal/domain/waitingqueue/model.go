package waitingqueue

// Preferred time-of-day windows a patient can wait for.
const (
	WindowMorning   = "morning"
	WindowAfternoon = "afternoon"
	WindowEvening   = "evening"
)

// Item is a standing request for an earlier appointment slot. Items have no
// status: the only lifecycle event after creation is removal. Priority is
// stored but drives no ordering.
type Item struct {
	ID                 string   `json:"id"`
	PatientID          string   `json:"patient_id"`
	DoctorID           string   `json:"doctor_id"`
	PreferredDates     []string `json:"preferred_dates"`
	PreferredTimeSlots []string `json:"preferred_time_slots"`
	Reason             string   `json:"reason"`
	Priority           int      `json:"priority"`
	RequestDate        string   `json:"request_date"`
}

// SeedQueue returns the static starting dataset.
func SeedQueue() []*Item {
	return []*Item{
		{
			ID:                 "1",
			PatientID:          "user1",
			DoctorID:           "1",
			PreferredDates:     []string{"2025-03-14", "2025-03-15", "2025-03-16"},
			PreferredTimeSlots: []string{WindowMorning, WindowAfternoon},
			Reason:             "Heart palpitations",
			Priority:           2,
			RequestDate:        "2025-03-05",
		},
		{
			ID:                 "2",
			PatientID:          "user2",
			DoctorID:           "3",
			PreferredDates:     []string{"2025-03-12", "2025-03-13"},
			PreferredTimeSlots: []string{WindowMorning},
			Reason:             "Child wellness visit",
			Priority:           1,
			RequestDate:        "2025-03-06",
		},
		{
			ID:                 "3",
			PatientID:          "user3",
			DoctorID:           "5",
			PreferredDates:     []string{"2025-03-20", "2025-03-21", "2025-03-22"},
			PreferredTimeSlots: []string{WindowAfternoon, WindowEvening},
			Reason:             "Chronic fatigue",
			Priority:           3,
			RequestDate:        "2025-03-04",
		},
	}
}
