package tasks

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sasyak-admin/internal/models"
)

var titleCase = cases.Title(language.English)

// FormatTaskType turns "FIELD_INSPECTION" into "Field Inspection".
func FormatTaskType(t models.TaskType) string {
	return titleCase.String(strings.ToLower(strings.ReplaceAll(string(t), "_", " ")))
}

// StatusLabel is the display form of a status; unknown values pass through.
func StatusLabel(s models.TaskStatus) string {
	switch s {
	case models.StatusPending:
		return "Pending"
	case models.StatusInProgress:
		return "In Progress"
	case models.StatusCompleted:
		return "Completed"
	case models.StatusScheduled:
		return "Scheduled"
	}
	return string(s)
}
