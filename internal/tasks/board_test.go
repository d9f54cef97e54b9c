package tasks

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"sasyak-admin/internal/models"
)

// stepClock advances one second on every read.
func stepClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func TestCreateAssignsIncreasingIDsNewestFirst(t *testing.T) {
	b := NewBoard(Seed(), WithClock(stepClock(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))))

	first, err := b.Create(CreateInput{TaskType: models.TypeFieldInspection, Description: "scan orchard"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Create(CreateInput{
		TaskType:    models.TypeIrrigationCheck,
		Description: "check pivots",
		Details:     models.IrrigationDetails{System: "Center pivot"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if first.ID != 6 || second.ID != 7 {
		t.Fatalf("ids = %d, %d; want 6, 7", first.ID, second.ID)
	}
	if first.Status != models.StatusPending || !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Fatalf("new task = %+v", first)
	}
	if !reflect.DeepEqual(first.Details, models.InspectionDetails{}) {
		t.Fatalf("nil details became %#v", first.Details)
	}

	list := b.List()
	if len(list) != 7 || list[0].ID != 7 || list[1].ID != 6 || list[2].ID != 1 {
		t.Fatalf("order = %v", ids(list))
	}
}

func TestCreateOnEmptyBoardStartsAtOne(t *testing.T) {
	b := NewBoard(nil)
	task, err := b.Create(CreateInput{TaskType: models.TypeHarvesting})
	if err != nil {
		t.Fatal(err)
	}
	if task.ID != 1 {
		t.Fatalf("id = %d", task.ID)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	b := NewBoard(nil)
	if _, err := b.Create(CreateInput{TaskType: "WEEDING"}); !errors.Is(err, ErrUnknownTaskType) {
		t.Fatalf("unknown type err = %v", err)
	}
	_, err := b.Create(CreateInput{TaskType: models.TypeHarvesting, Details: models.PlantingDetails{}})
	if !errors.Is(err, ErrDetailsMismatch) {
		t.Fatalf("mismatch err = %v", err)
	}
	if len(b.List()) != 0 {
		t.Fatal("failed create changed the board")
	}
}

func TestUpdateStatusOnlyTouchesStatusAndUpdatedAt(t *testing.T) {
	b := NewBoard(Seed(), WithClock(stepClock(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))))
	before, _ := b.Get(1)

	after, err := b.UpdateStatus(1, models.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if after.Status != models.StatusCompleted {
		t.Fatalf("status = %s", after.Status)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updatedAt %v not after %v", after.UpdatedAt, before.UpdatedAt)
	}

	after.Status, after.UpdatedAt = before.Status, before.UpdatedAt
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("other fields changed:\nbefore=%+v\n after=%+v", before, after)
	}
}

func TestUpdateStatusMovesForwardWhenClockLags(t *testing.T) {
	frozen := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBoard(Seed(), WithClock(func() time.Time { return frozen }))
	before, _ := b.Get(2)

	after, err := b.UpdateStatus(2, models.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("updatedAt went backwards: %v", after.UpdatedAt)
	}
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	b := NewBoard(Seed())
	if _, err := b.UpdateStatus(3, models.StatusPending); err != nil {
		t.Fatalf("COMPLETED -> PENDING: %v", err)
	}
	if _, err := b.UpdateStatus(3, models.StatusScheduled); err != nil {
		t.Fatalf("PENDING -> SCHEDULED: %v", err)
	}
}

func TestUpdateStatusUnknown(t *testing.T) {
	b := NewBoard(Seed())
	want := b.List()

	if _, err := b.UpdateStatus(99, models.StatusCompleted); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("unknown id err = %v", err)
	}
	if _, err := b.UpdateStatus(1, "DONE"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("unknown status err = %v", err)
	}
	if !reflect.DeepEqual(want, b.List()) {
		t.Fatal("board changed")
	}
}

func TestStats(t *testing.T) {
	got := NewBoard(Seed()).Stats()
	want := Stats{Total: 5, Pending: 2, InProgress: 1, Completed: 1, Scheduled: 1}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func ids(list []models.Task) []int64 {
	out := make([]int64, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func TestBoardDoesNotShareDetails(t *testing.T) {
	b := NewBoard(nil)
	in := &models.MaintenanceDetails{Equipment: "Tractor #3", Parts: []string{"Oil filter"}}
	created, err := b.Create(CreateInput{TaskType: models.TypeEquipmentMaintenance, Details: in})
	if err != nil {
		t.Fatal(err)
	}
	in.Equipment = "changed"
	in.Parts[0] = "changed"
	created.Details.(models.MaintenanceDetails).Parts[0] = "changed"
	b.List()[0].Details.(models.MaintenanceDetails).Parts[0] = "changed"

	got, _ := b.Get(created.ID)
	want := models.MaintenanceDetails{Equipment: "Tractor #3", Parts: []string{"Oil filter"}}
	if !reflect.DeepEqual(got.Details, want) {
		t.Fatalf("details = %+v", got.Details)
	}
}

func TestCreateAcceptsNilDetailsPointer(t *testing.T) {
	b := NewBoard(nil)
	created, err := b.Create(CreateInput{TaskType: models.TypeHarvesting, Details: (*models.HarvestDetails)(nil)})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(created.Details, models.HarvestDetails{}) {
		t.Fatalf("details = %#v", created.Details)
	}
}
