package domain_test

import (
	"reflect"
	"testing"

	"ancare/internal/modules/interest/domain"
)

func TestNewEventDefaults(t *testing.T) {
	t.Parallel()
	got := domain.NewEvent("2026-03-01T09:00:00.000Z", "", "", "", "")
	want := domain.Event{Timestamp: "2026-03-01T09:00:00.000Z", Variant: "unknown", Name: "an:care", Source: "shop"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestExportDelimited(t *testing.T) {
	t.Parallel()
	log := domain.NewLog()
	if got := domain.ExportDelimited(log); got != "timestamp;variant;name;source;note" {
		t.Fatalf("empty export: %q", got)
	}
	log.Record(domain.NewEvent("2026-03-01T09:00:00.000Z", "calm", "Stick Calm", "shop", "a;b"))
	log.Record(domain.NewEvent("2026-03-01T09:05:00.000Z", "focus", "", "insta", ""))
	want := "timestamp;variant;name;source;note\n" +
		"2026-03-01T09:00:00.000Z;calm;Stick Calm;shop;a,b\n" +
		"2026-03-01T09:05:00.000Z;focus;an:care;insta;"
	if got := domain.ExportDelimited(log); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRankingOrdersByCountThenName(t *testing.T) {
	t.Parallel()
	log := domain.Log{Totals: map[string]int{"focus": 2, "calm": 3, "boost": 2, "sleep": 1}}
	want := []domain.VariantCount{{"calm", 3}, {"boost", 2}, {"focus", 2}, {"sleep", 1}}
	if got := log.Ranking(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDriftReportsMismatchedTotals(t *testing.T) {
	t.Parallel()
	log := domain.NewLog()
	log.Record(domain.NewEvent("t1", "calm", "", "", ""))
	log.Record(domain.NewEvent("t2", "calm", "", "", ""))
	if drift := log.Drift(); len(drift) != 0 {
		t.Fatalf("fresh log must be consistent, got %v", drift)
	}
	log.Totals["calm"] = 5
	log.Totals["ghost"] = 1
	log.Events = append(log.Events, domain.NewEvent("t3", "focus", "", "", ""))
	if drift := log.Drift(); !reflect.DeepEqual(drift, []string{"calm", "focus", "ghost"}) {
		t.Fatalf("unexpected drift %v", drift)
	}
}
