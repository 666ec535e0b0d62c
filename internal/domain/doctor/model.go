package doctor

// Doctor is a member of the practice roster. The roster is seeded at startup
// and read-only for the process lifetime; ids are immutable.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Image        string   `json:"image"`
	Experience   int      `json:"experience"`
	Bio          string   `json:"bio"`
	Availability []string `json:"availability"`
}

// SeedDoctors returns the static practice roster. Order matters: specialty
// recommendation resolves to the first roster entry with a matching
// specialty.
func SeedDoctors() []*Doctor {
	return []*Doctor{
		{
			ID:           "1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "Cardiology",
			Image:        "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience:   12,
			Bio:          "Dr. Johnson specializes in cardiovascular health with a focus on preventative care and women's heart health",
			Availability: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			ID:           "2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Neurology",
			Image:        "https://images.pexels.com/photos/5439467/pexels-photo-5439467.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience:   8,
			Bio:          "Dr. Chen is a board-certified neurologist with expertise in headache disorders and neurodegenerative diseases.",
			Availability: []string{"Tuesday", "Thursday", "Saturday"},
		},
		{
			ID:           "3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Pediatrics",
			Image:        "https://images.pexels.com/photos/5407206/pexels-photo-5407206.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience:   15,
			Bio:          "Dr. Rodriguez has been caring for children for over 15 years with a special interest in developmental health.",
			Availability: []string{"Monday", "Tuesday", "Thursday"},
		},
		{
			ID:           "4",
			Name:         "Dr. James Wilson",
			Specialty:    "Dermatology",
			Image:        "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience:   10,
			Bio:          "Dr. Wilson focuses on treating skin conditions and performing minimally invasive cosmetic procedures.",
			Availability: []string{"Wednesday", "Friday", "Saturday"},
		},
		{
			ID:           "5",
			Name:         "Dr. Olivia Kim",
			Specialty:    "Internal Medicine",
			Image:        "https://images.pexels.com/photos/5214958/pexels-photo-5214958.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience:   12,
			Bio:          "Dr. Kim provides comprehensive care for adults with an emphasis on chronic disease management.",
			Availability: []string{"Monday", "Wednesday", "Friday"},
		},
	}
}
