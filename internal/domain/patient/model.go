package patient

// User is the session patient. There is no real authentication: exactly one
// simulated user exists per session, and its id lists grow as the user books
// appointments or joins waiting queues.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Appointments []string `json:"appointments"`
	WaitingQueue []string `json:"waiting_queue"`
}

// SeedUser returns the simulated session user.
func SeedUser() *User {
	return &User{
		ID:           "user1",
		Name:         "Jane Doe",
		Email:        "jane.doe@example.com",
		Phone:        "123-456-7890",
		Appointments: []string{"1", "2"},
		WaitingQueue: []string{"1"},
	}
}
