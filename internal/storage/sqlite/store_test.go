package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "leafy.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_InitSeedsDefaultSettings(t *testing.T) {
	store := newTestStore(t)
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.GroupMode != "plant" || settings.SortMode != "urgency" {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "leafy.db"))
	if err := store.Load(); err == nil {
		t.Fatal("loading an uninitialized store should fail")
	}
}

func TestStore_ReminderRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().Truncate(time.Millisecond)

	r := models.Reminder{
		ID:           "r1",
		PlantID:      "p1",
		PlantName:    "Monstera",
		Type:         constants.CareFertilizer,
		IntervalDays: 30,
		LastDone:     now,
		NextDue:      models.DueFrom(now, 30),
		History:      []time.Time{now, now.Add(-30 * 24 * time.Hour)},
	}
	if err := store.SaveReminder(r); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.GetAllReminders()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Type != constants.CareFertilizer || got[0].IntervalDays != 30 {
		t.Errorf("fields lost in round trip: %+v", got[0])
	}
	if !got[0].LastDone.Equal(r.LastDone) || !got[0].NextDue.Equal(r.NextDue) {
		t.Errorf("timestamps lost precision: %v / %v", got[0].LastDone, got[0].NextDue)
	}
	if len(got[0].History) != 2 || !got[0].History[0].Equal(r.History[0]) {
		t.Errorf("history lost in round trip: %v", got[0].History)
	}
}

func TestStore_SaveReminderReplacesByID(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().Truncate(time.Millisecond)

	r := models.Reminder{ID: "r1", PlantID: "p1", PlantName: "Monstera", Type: constants.CareWater, IntervalDays: 3, LastDone: now, NextDue: models.DueFrom(now, 3)}
	if err := store.SaveReminder(r); err != nil {
		t.Fatal(err)
	}
	r.IntervalDays = 5
	r.NextDue = models.DueFrom(now, 5)
	if err := store.SaveReminder(r); err != nil {
		t.Fatal(err)
	}

	got, _ := store.GetAllReminders()
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 after replace", len(got))
	}
	if got[0].IntervalDays != 5 {
		t.Errorf("IntervalDays = %d, want 5", got[0].IntervalDays)
	}
}

func TestStore_DeleteReminder(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()
	r := models.Reminder{ID: "r1", PlantID: "p1", PlantName: "Monstera", Type: constants.CareWater, IntervalDays: 3, LastDone: now, NextDue: models.DueFrom(now, 3)}
	if err := store.SaveReminder(r); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteReminder("missing"); err != nil {
		t.Fatalf("delete of missing id should not error: %v", err)
	}
	if err := store.DeleteReminder("r1"); err != nil {
		t.Fatal(err)
	}
	got, _ := store.GetAllReminders()
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestStore_PlantRoundTrip(t *testing.T) {
	store := newTestStore(t)
	now := time.Now().Truncate(time.Millisecond)

	plant := models.PlantDetails{
		ID:             "p1",
		CommonName:     "Monstera Deliciosa",
		ScientificName: "Monstera deliciosa",
		Description:    "A dramatic climber.",
		HealthStatus:   "Thriving",
		IsPlant:        true,
		Care: models.CareInstructions{
			Water:                  "Weekly",
			SuggestedWaterDays:     7,
			SuggestedFertilizeDays: 30,
		},
		Timestamp: now,
	}
	if err := store.AddPlant(plant); err != nil {
		t.Fatalf("add: %v", err)
	}
	older := plant
	older.ID = "p0"
	older.Timestamp = now.Add(-time.Hour)
	if err := store.AddPlant(older); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetAllPlants()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "p1" {
		t.Errorf("order = [%s %s], want newest first", got[0].ID, got[1].ID)
	}
	if got[0].Care.SuggestedWaterDays != 7 {
		t.Errorf("care lost in round trip: %+v", got[0].Care)
	}

	if err := store.ClearPlants(); err != nil {
		t.Fatal(err)
	}
	got, _ = store.GetAllPlants()
	if len(got) != 0 {
		t.Fatal("plants not cleared")
	}
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := models.Settings{Theme: "light", GroupMode: "type", SortMode: "name"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}
