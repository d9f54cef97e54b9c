package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusScheduled  TaskStatus = "SCHEDULED"
)

var Statuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusScheduled}

func (s TaskStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type TaskType string

const (
	TypeFieldInspection      TaskType = "FIELD_INSPECTION"
	TypeEquipmentMaintenance TaskType = "EQUIPMENT_MAINTENANCE"
	TypeCropPlanting         TaskType = "CROP_PLANTING"
	TypeIrrigationCheck      TaskType = "IRRIGATION_CHECK"
	TypeHarvesting           TaskType = "HARVESTING"
)

var TaskTypes = []TaskType{
	TypeFieldInspection, TypeEquipmentMaintenance, TypeCropPlanting,
	TypeIrrigationCheck, TypeHarvesting,
}

func (t TaskType) Valid() bool {
	_, ok := ZeroDetails(t)
	return ok
}

// Implementation records the work once it has started or finished.
type Implementation struct {
	StartTime      *time.Time `json:"startTime,omitempty"`
	CompletionTime *time.Time `json:"completionTime,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type Task struct {
	ID             int64           `json:"id"`
	TaskType       TaskType        `json:"taskType"`
	Description    string          `json:"description"`
	Status         TaskStatus      `json:"status"`
	CreatedBy      string          `json:"createdBy"`
	AssignedTo     string          `json:"assignedTo"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Details        Details         `json:"details"`
	Implementation *Implementation `json:"implementation,omitempty"`
}

// UnmarshalJSON picks the details struct from taskType.
func (t *Task) UnmarshalJSON(b []byte) error {
	type plain Task
	var aux struct {
		plain
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d, err := DecodeDetails(aux.TaskType, aux.Details)
	if err != nil {
		return fmt.Errorf("task %d details: %w", aux.ID, err)
	}
	*t = Task(aux.plain)
	t.Details = d
	return nil
}
