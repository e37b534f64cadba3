package dto

const (
	StateAbsent    = "absent"
	StatePopulated = "populated"
)

type RecordInput struct {
	Variant string
	Name    string
	Source  string
	Note    string
}

type EventOutput struct {
	Timestamp string
	Variant   string
	Name      string
	Source    string
	Note      string
}

type LogOutput struct {
	State  string
	Events []EventOutput
	Totals map[string]int
}

type RankingEntry struct {
	Variant string
	Count   int
}

type VerifyOutput struct {
	Consistent bool
	Drift      []string
	Totals     map[string]int
	Recount    map[string]int
}
