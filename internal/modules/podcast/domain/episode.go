package domain

// Episode is one entry of the an:care podcast list.
type Episode struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Duration  string `json:"duration"`
	Published string `json:"published"`
}

// Fixtures is the canonical episode list written by Seed.
func Fixtures() []Episode {
	return []Episode{
		{
			ID:        "ancare_ep_001",
			Number:    1,
			Title:     "Warum an:care?",
			Summary:   "Wie aus einer Idee am Küchentisch ein Stick für ruhige Momente wurde.",
			Duration:  "24:10",
			Published: "2025-09-01",
		},
		{
			ID:        "ancare_ep_002",
			Number:    2,
			Title:     "Lavendel, Bergamotte, Vetiver",
			Summary:   "Die Duftnoten des Calm Sticks und was sie im Alltag bewirken sollen.",
			Duration:  "31:45",
			Published: "2025-09-15",
		},
		{
			ID:        "ancare_ep_003",
			Number:    3,
			Title:     "Pausen, die wirklich Pausen sind",
			Summary:   "Kleine Rituale gegen Stress zwischen zwei Terminen.",
			Duration:  "27:30",
			Published: "2025-10-01",
		},
		{
			ID:        "ancare_ep_004",
			Number:    4,
			Title:     "Ihr habt gefragt",
			Summary:   "Antworten auf eure Fragen zu Inhaltsstoffen, Versand und neuen Sorten.",
			Duration:  "35:05",
			Published: "2025-10-15",
		},
	}
}
