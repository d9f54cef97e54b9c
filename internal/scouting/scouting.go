// Package scouting holds the land-scouting records shown on the land page.
// The data is fixed demo content; nothing writes to it.
package scouting

import (
	"strings"

	"sasyak-admin/internal/models"
)

const (
	EventCompleted  = "Completed"
	EventInProgress = "In Progress"
	EventScheduled  = "Scheduled"
)

type Catalog struct {
	events []models.ScoutingEvent
	land   []models.LandProperty
}

func New(events []models.ScoutingEvent, land []models.LandProperty) *Catalog {
	return &Catalog{events: events, land: land}
}

// Seeded returns a catalog with the demo events and properties.
func Seeded() *Catalog { return New(seedEvents(), seedLand()) }

func contains(s, q string) bool { return strings.Contains(strings.ToLower(s), q) }

// FilterEvents matches term against location, assignee and status.
func (c *Catalog) FilterEvents(term string) []models.ScoutingEvent {
	q := strings.ToLower(term)
	out := make([]models.ScoutingEvent, 0, len(c.events))
	for _, e := range c.events {
		if contains(e.Location, q) || contains(e.AssignedTo, q) || contains(e.Status, q) {
			out = append(out, e)
		}
	}
	return out
}

// FilterLand matches term against name, type and status.
func (c *Catalog) FilterLand(term string) []models.LandProperty {
	q := strings.ToLower(term)
	out := make([]models.LandProperty, 0, len(c.land))
	for _, p := range c.land {
		if contains(p.Name, q) || contains(p.Type, q) || contains(p.Status, q) {
			out = append(out, p)
		}
	}
	return out
}

// TotalLandArea sums every property regardless of any filter.
func (c *Catalog) TotalLandArea() int {
	n := 0
	for _, p := range c.land {
		n += p.Area
	}
	return n
}

func (c *Catalog) TotalScoutedArea() int {
	n := 0
	for _, e := range c.events {
		n += e.Area
	}
	return n
}

type StatusCounts struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Scheduled  int `json:"scheduled"`
}

func (c *Catalog) EventStatusCounts() StatusCounts {
	var s StatusCounts
	for _, e := range c.events {
		switch e.Status {
		case EventCompleted:
			s.Completed++
		case EventInProgress:
			s.InProgress++
		case EventScheduled:
			s.Scheduled++
		}
	}
	return s
}
