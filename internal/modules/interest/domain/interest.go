package domain

import (
	"sort"
	"strings"
)

const (
	DefaultVariant = "unknown"
	DefaultName    = "an:care"
	DefaultSource  = "shop"

	ExportFileName = "ancare_nachfrage.csv"
	exportHeader   = "timestamp;variant;name;source;note"
)

// Event is one expression of interest. Timestamp is an ISO-8601 UTC instant
// with millisecond precision.
type Event struct {
	Timestamp string `json:"ts"`
	Variant   string `json:"variant"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	Note      string `json:"note"`
}

// NewEvent applies the defaults for empty fields.
func NewEvent(timestamp, variant, name, source, note string) Event {
	return Event{
		Timestamp: timestamp,
		Variant:   orDefault(variant, DefaultVariant),
		Name:      orDefault(name, DefaultName),
		Source:    orDefault(source, DefaultSource),
		Note:      note,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Log is the event history plus running per-variant totals. Totals are kept
// incrementally and are not recomputed from Events on load.
type Log struct {
	Events []Event
	Totals map[string]int
}

func NewLog() Log {
	return Log{Events: []Event{}, Totals: map[string]int{}}
}

func (l *Log) Record(e Event) {
	if l.Totals == nil {
		l.Totals = map[string]int{}
	}
	l.Events = append(l.Events, e)
	l.Totals[e.Variant]++
}

// Recount derives the totals from the event list.
func (l Log) Recount() map[string]int {
	out := map[string]int{}
	for _, e := range l.Events {
		out[e.Variant]++
	}
	return out
}

// Drift lists variants whose running total differs from a recount, sorted.
func (l Log) Drift() []string {
	recount := l.Recount()
	seen := map[string]struct{}{}
	var drift []string
	check := func(variant string) {
		if _, ok := seen[variant]; ok {
			return
		}
		seen[variant] = struct{}{}
		if l.Totals[variant] != recount[variant] {
			drift = append(drift, variant)
		}
	}
	for variant := range l.Totals {
		check(variant)
	}
	for variant := range recount {
		check(variant)
	}
	sort.Strings(drift)
	return drift
}

type VariantCount struct {
	Variant string
	Count   int
}

// Ranking orders variants by count, highest first, then by name.
func (l Log) Ranking() []VariantCount {
	out := make([]VariantCount, 0, len(l.Totals))
	for variant, count := range l.Totals {
		out = append(out, VariantCount{Variant: variant, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Variant < out[j].Variant
	})
	return out
}

// ExportDelimited renders the log as semicolon separated rows with a header.
// Semicolons inside notes become commas; other fields are written verbatim.
func ExportDelimited(l Log) string {
	lines := make([]string, 0, len(l.Events)+1)
	lines = append(lines, exportHeader)
	for _, e := range l.Events {
		lines = append(lines, strings.Join([]string{
			e.Timestamp,
			e.Variant,
			e.Name,
			e.Source,
			strings.ReplaceAll(e.Note, ";", ","),
		}, ";"))
	}
	return strings.Join(lines, "\n")
}
