package scouting

import "sasyak-admin/internal/models"

func seedEvents() []models.ScoutingEvent {
	return []models.ScoutingEvent{
		{ID: 1, Location: "North Ridge Site", Date: "2025-03-15", AssignedTo: "Kevin Clark", Status: EventCompleted, Findings: "Suitable for agricultural development", Area: 45},
		{ID: 2, Location: "Riverside Property", Date: "2025-03-22", AssignedTo: "Michelle Garcia", Status: EventCompleted, Findings: "Water access issues identified", Area: 78},
		{ID: 3, Location: "East Valley Lot", Date: "2025-03-28", AssignedTo: "James Harris", Status: EventInProgress, Findings: "Initial assessment positive", Area: 120},
		{ID: 4, Location: "Highland Area", Date: "2025-04-05", AssignedTo: "Patricia Young", Status: EventScheduled, Findings: "Pending", Area: 92},
		{ID: 5, Location: "South Forest Extension", Date: "2025-04-12", AssignedTo: "Thomas Martin", Status: EventScheduled, Findings: "Pending", Area: 160},
	}
}

func seedLand() []models.LandProperty {
	return []models.LandProperty{
		{ID: 1, Name: "North Agricultural Zone", Area: 145, Status: "Active", Type: "Agricultural", AcquisitionDate: "2023-06-10", Utilization: 85},
		{ID: 2, Name: "East Commercial Plot", Area: 78, Status: "Active", Type: "Commercial", AcquisitionDate: "2024-01-15", Utilization: 60},
		{ID: 3, Name: "South Residential Development", Area: 220, Status: "Planning", Type: "Residential", AcquisitionDate: "2024-02-28", Utilization: 30},
		{ID: 4, Name: "West Industrial Complex", Area: 117, Status: "Active", Type: "Industrial", AcquisitionDate: "2023-11-05", Utilization: 70},
	}
}
