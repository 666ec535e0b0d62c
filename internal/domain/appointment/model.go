package appointment

// Appointment statuses. Scheduled appointments can only move to cancelled;
// completed exists solely in seed data (completion is an external event).
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Date      string `json:"date"` // "2006-01-02"
	Time      string `json:"time"` // slot value, e.g. "9:30"
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

// SeedAppointments returns the static starting dataset.
func SeedAppointments() []*Appointment {
	return []*Appointment{
		{
			ID:        "1",
			DoctorID:  "1",
			PatientID: "user1",
			Date:      "2025-03-12",
			Time:      "09:00",
			Status:    StatusScheduled,
			Notes:     "Annual checkup",
		},
		{
			ID:        "2",
			DoctorID:  "3",
			PatientID: "user1",
			Date:      "2025-03-18",
			Time:      "14:30",
			Status:    StatusScheduled,
			Notes:     "Follow-up appointment",
		},
		{
			ID:        "3",
			DoctorID:  "2",
			PatientID: "user2",
			Date:      "2025-03-15",
			Time:      "11:00",
			Status:    StatusScheduled,
		},
		{
			ID:        "4",
			DoctorID:  "4",
			PatientID: "user2",
			Date:      "2025-03-10",
			Time:      "10:00",
			Status:    StatusCompleted,
			Notes:     "Skin consultation",
		},
	}
}
