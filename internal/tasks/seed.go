package tasks

import (
	"time"

	"sasyak-admin/internal/models"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// Seed returns the demo tasks a fresh board starts with.
func Seed() []models.Task {
	return []models.Task{
		{
			ID:          1,
			TaskType:    models.TypeFieldInspection,
			Description: "Inspect north field for pest damage",
			Status:      models.StatusPending,
			CreatedBy:   "Admin User",
			AssignedTo:  "John Smith",
			CreatedAt:   at("2025-04-15T10:30:00Z"),
			UpdatedAt:   at("2025-04-15T10:30:00Z"),
			Details: models.InspectionDetails{
				Location:      "North Field - Block A",
				Priority:      "High",
				EstimatedTime: "2 hours",
			},
		},
		{
			ID:          2,
			TaskType:    models.TypeEquipmentMaintenance,
			Description: "Perform regular maintenance on tractor #3",
			Status:      models.StatusInProgress,
			CreatedBy:   "Admin User",
			AssignedTo:  "Michael Johnson",
			CreatedAt:   at("2025-04-14T09:15:00Z"),
			UpdatedAt:   at("2025-04-16T11:45:00Z"),
			Details: models.MaintenanceDetails{
				Equipment:       "Tractor #3",
				MaintenanceType: "Regular",
				Parts:           []string{"Oil filter", "Air filter"},
			},
			Implementation: &models.Implementation{
				StartTime: ptr(at("2025-04-16T10:00:00Z")),
				Notes:     "Started maintenance process, waiting for parts",
			},
		},
		{
			ID:          3,
			TaskType:    models.TypeCropPlanting,
			Description: "Plant corn in east field",
			Status:      models.StatusCompleted,
			CreatedBy:   "Admin User",
			AssignedTo:  "Sarah Williams",
			CreatedAt:   at("2025-04-10T08:00:00Z"),
			UpdatedAt:   at("2025-04-13T16:30:00Z"),
			Details: models.PlantingDetails{
				CropType:      "Corn",
				FieldLocation: "East Field",
				SeedAmount:    "200 kg",
			},
			Implementation: &models.Implementation{
				CompletionTime: ptr(at("2025-04-13T16:30:00Z")),
				Notes:          "Planting completed successfully, used tractor #2",
			},
		},
		{
			ID:          4,
			TaskType:    models.TypeIrrigationCheck,
			Description: "Check irrigation system in the southern fields",
			Status:      models.StatusPending,
			CreatedBy:   "Admin User",
			AssignedTo:  "Emily Brown",
			CreatedAt:   at("2025-04-18T14:20:00Z"),
			UpdatedAt:   at("2025-04-18T14:20:00Z"),
			Details: models.IrrigationDetails{
				System:   "Drip irrigation",
				Area:     "Southern fields",
				Priority: "Medium",
			},
		},
		{
			ID:          5,
			TaskType:    models.TypeHarvesting,
			Description: "Harvest wheat in west field",
			Status:      models.StatusScheduled,
			CreatedBy:   "Admin User",
			AssignedTo:  "David Clark",
			CreatedAt:   at("2025-04-17T11:00:00Z"),
			UpdatedAt:   at("2025-04-17T11:00:00Z"),
			Details: models.HarvestDetails{
				CropType:        "Wheat",
				FieldLocation:   "West Field",
				ScheduledDate:   "2025-04-25",
				EquipmentNeeded: []string{"Combine harvester", "Trailer"},
			},
		},
	}
}

// SeedInbox returns the demo inbox, timed relative to now.
func SeedInbox(now time.Time) []models.TaskNotification {
	return []models.TaskNotification{
		{
			ID:        1,
			Title:     "Task Status Updated",
			Message:   "Task 'Inspect north field for pest damage' has been marked as In Progress",
			TaskID:    1,
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:        2,
			Title:     "Task Completed",
			Message:   "Task 'Plant corn in east field' has been completed",
			TaskID:    3,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        3,
			Title:     "New Task Assigned",
			Message:   "A new task 'Check irrigation system in the southern fields' has been assigned",
			TaskID:    4,
			IsRead:    true,
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        4,
			Title:     "Task Scheduled",
			Message:   "Task 'Harvest wheat in west field' has been scheduled",
			TaskID:    5,
			IsRead:    true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}
