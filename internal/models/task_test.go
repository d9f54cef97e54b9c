package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestTaskDetailsFollowTaskType(t *testing.T) {
	in := Task{
		ID:          2,
		TaskType:    TypeEquipmentMaintenance,
		Description: "Perform regular maintenance on tractor #3",
		Status:      StatusInProgress,
		CreatedAt:   time.Date(2025, 4, 14, 9, 15, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 4, 16, 11, 45, 0, 0, time.UTC),
		Details: MaintenanceDetails{
			Equipment:       "Tractor #3",
			MaintenanceType: "Regular",
			Parts:           []string{"Oil filter", "Air filter"},
		},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out Task
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if _, ok := out.Details.(MaintenanceDetails); !ok {
		t.Fatalf("details decoded as %T", out.Details)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip changed task:\n in=%+v\nout=%+v", in, out)
	}
}

func TestTaskMissingDetailsDecodeToZero(t *testing.T) {
	var out Task
	if err := json.Unmarshal([]byte(`{"id":1,"taskType":"HARVESTING","status":"SCHEDULED"}`), &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.Details, HarvestDetails{}) {
		t.Fatalf("details = %#v", out.Details)
	}
}

func TestTaskUnknownTypeFails(t *testing.T) {
	var out Task
	if err := json.Unmarshal([]byte(`{"id":1,"taskType":"WEEDING","details":{}}`), &out); err == nil {
		t.Fatal("expected error for unknown task type")
	}
}

func TestStatusAndTypeValid(t *testing.T) {
	if !StatusScheduled.Valid() || TaskStatus("DONE").Valid() {
		t.Fatal("status validity wrong")
	}
	if !TypeIrrigationCheck.Valid() || TaskType("").Valid() {
		t.Fatal("type validity wrong")
	}
}

func TestNotificationKind(t *testing.T) {
	cases := map[string]NotificationKind{
		"Task Completed":      KindCompleted,
		"Task In Progress":    KindProgress,
		"New Task Assigned":   KindAssigned,
		"Task Scheduled":      KindScheduled,
		"Task Status Updated": KindStatus,
		"Reminder":            KindOther,
	}
	for title, want := range cases {
		if got := (TaskNotification{Title: title}).Kind(); got != want {
			t.Errorf("%q kind = %s, want %s", title, got, want)
		}
	}
}

func TestSessionDisplayName(t *testing.T) {
	if got := (Session{}).DisplayName(); got != "Admin" {
		t.Errorf("empty = %q", got)
	}
	if got := (Session{Username: "Ravi"}).DisplayName(); got != "Ravi" {
		t.Errorf("named = %q", got)
	}
}
