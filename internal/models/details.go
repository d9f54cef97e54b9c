package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Details is the per-type payload of a Task. Each task type has exactly one
// implementation.
type Details interface {
	TaskType() TaskType
}

type InspectionDetails struct {
	Location      string `json:"location,omitempty"`
	Priority      string `json:"priority,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type MaintenanceDetails struct {
	Equipment       string   `json:"equipment,omitempty"`
	MaintenanceType string   `json:"maintenanceType,omitempty"`
	Parts           []string `json:"parts,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

type PlantingDetails struct {
	CropType      string `json:"cropType,omitempty"`
	FieldLocation string `json:"fieldLocation,omitempty"`
	SeedAmount    string `json:"seedAmount,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type IrrigationDetails struct {
	System   string `json:"system,omitempty"`
	Area     string `json:"area,omitempty"`
	Priority string `json:"priority,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type HarvestDetails struct {
	CropType        string   `json:"cropType,omitempty"`
	FieldLocation   string   `json:"fieldLocation,omitempty"`
	ScheduledDate   string   `json:"scheduledDate,omitempty"`
	EquipmentNeeded []string `json:"equipmentNeeded,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

func (InspectionDetails) TaskType() TaskType  { return TypeFieldInspection }
func (MaintenanceDetails) TaskType() TaskType { return TypeEquipmentMaintenance }
func (PlantingDetails) TaskType() TaskType    { return TypeCropPlanting }
func (IrrigationDetails) TaskType() TaskType  { return TypeIrrigationCheck }
func (HarvestDetails) TaskType() TaskType     { return TypeHarvesting }

// ZeroDetails returns the empty details value for t, or false for an
// unknown type.
func ZeroDetails(t TaskType) (Details, bool) {
	switch t {
	case TypeFieldInspection:
		return InspectionDetails{}, true
	case TypeEquipmentMaintenance:
		return MaintenanceDetails{}, true
	case TypeCropPlanting:
		return PlantingDetails{}, true
	case TypeIrrigationCheck:
		return IrrigationDetails{}, true
	case TypeHarvesting:
		return HarvestDetails{}, true
	}
	return nil, false
}

// CloneDetails returns a value copy of d that shares no slices with it.
// Pointer details are dereferenced; a nil pointer gives the empty value.
func CloneDetails(d Details) Details {
	switch x := d.(type) {
	case *InspectionDetails:
		return derefOrZero(x)
	case *MaintenanceDetails:
		return CloneDetails(derefOrZero(x))
	case *PlantingDetails:
		return derefOrZero(x)
	case *IrrigationDetails:
		return derefOrZero(x)
	case *HarvestDetails:
		return CloneDetails(derefOrZero(x))
	case MaintenanceDetails:
		x.Parts = slices.Clone(x.Parts)
		return x
	case HarvestDetails:
		x.EquipmentNeeded = slices.Clone(x.EquipmentNeeded)
		return x
	}
	return d
}

func derefOrZero[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// DecodeDetails parses raw into the details struct for t. Empty or null
// input yields the zero value.
func DecodeDetails(t TaskType, raw json.RawMessage) (Details, error) {
	switch t {
	case TypeFieldInspection:
		return decodeAs[InspectionDetails](raw)
	case TypeEquipmentMaintenance:
		return decodeAs[MaintenanceDetails](raw)
	case TypeCropPlanting:
		return decodeAs[PlantingDetails](raw)
	case TypeIrrigationCheck:
		return decodeAs[IrrigationDetails](raw)
	case TypeHarvesting:
		return decodeAs[HarvestDetails](raw)
	}
	return nil, fmt.Errorf("unknown task type %q", t)
}

func decodeAs[T Details](raw json.RawMessage) (Details, error) {
	var d T
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}
