package models

type ScoutingEvent struct {
	ID         int64  `json:"id"`
	Location   string `json:"location"`
	Date       string `json:"date"` // YYYY-MM-DD
	AssignedTo string `json:"assignedTo"`
	Status     string `json:"status"` // Completed | In Progress | Scheduled
	Findings   string `json:"findings"`
	Area       int    `json:"area"` // acres
}

type LandProperty struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Area            int    `json:"area"`
	Status          string `json:"status"`
	Type            string `json:"type"`
	AcquisitionDate string `json:"acquisitionDate"`
	Utilization     int    `json:"utilization"` // percent
}
