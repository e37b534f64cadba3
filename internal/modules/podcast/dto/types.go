package dto

type EpisodeOutput struct {
	ID        string
	Number    int
	Title     string
	Summary   string
	Duration  string
	Published string
}
