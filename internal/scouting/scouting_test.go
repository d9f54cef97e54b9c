package scouting

import (
	"testing"

	"sasyak-admin/internal/models"
)

func eventIDs(list []models.ScoutingEvent) []int64 {
	out := []int64{}
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterEvents(t *testing.T) {
	c := Seeded()
	if got := c.FilterEvents(""); len(got) != 5 {
		t.Fatalf("empty term kept %d", len(got))
	}
	cases := map[string][]int64{
		"RIVER":       {2},
		"scheduled":   {4, 5},
		"james":       {3},
		"suitable":    {}, // findings are not searched
		"in progress": {3},
	}
	for term, want := range cases {
		got := eventIDs(c.FilterEvents(term))
		if len(got) != len(want) {
			t.Errorf("%q = %v, want %v", term, got, want)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%q = %v, want %v", term, got, want)
				break
			}
		}
	}
}

func TestFilterLand(t *testing.T) {
	c := Seeded()
	if got := c.FilterLand("active"); len(got) != 3 {
		t.Fatalf("active = %d", len(got))
	}
	if got := c.FilterLand("resid"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("resid = %+v", got)
	}
}

func TestTotalsAndCounts(t *testing.T) {
	c := Seeded()
	if got := c.TotalLandArea(); got != 560 {
		t.Fatalf("land area = %d", got)
	}
	if got := c.TotalScoutedArea(); got != 495 {
		t.Fatalf("scouted area = %d", got)
	}
	want := StatusCounts{Completed: 2, InProgress: 1, Scheduled: 2}
	if got := c.EventStatusCounts(); got != want {
		t.Fatalf("counts = %+v", got)
	}
}
