package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leafyapp/leafy/internal/constants"
	"github.com/leafyapp/leafy/internal/models"
)

func newInitializedStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "leafy.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return store
}

func TestJSONStore_InitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leafy.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Fatal("second init should refuse an existing store")
	}
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "leafy.json"))
	if err := store.Load(); err == nil {
		t.Fatal("loading an uninitialized store should fail")
	}
}

func TestJSONStore_LoadCorruptFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leafy.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.GroupMode != "plant" || settings.SortMode != "urgency" {
		t.Errorf("settings = %+v, want defaults", settings)
	}
	reminders, err := store.GetAllReminders()
	if err != nil {
		t.Fatalf("reminders: %v", err)
	}
	if len(reminders) != 0 {
		t.Errorf("reminders = %d, want empty after corrupt load", len(reminders))
	}
}

func TestJSONStore_ReminderRoundTrip(t *testing.T) {
	store := newInitializedStore(t)
	now := time.Now().Truncate(time.Millisecond)

	r := models.Reminder{
		ID:           "r1",
		PlantID:      "p1",
		PlantName:    "Monstera",
		Type:         constants.CareWater,
		IntervalDays: 3,
		LastDone:     now,
		NextDue:      models.DueFrom(now, 3),
		History:      []time.Time{now},
	}
	if err := store.SaveReminder(r); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := NewJSONStore(store.GetConfigPath())
	if err := fresh.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := fresh.GetAllReminders()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "r1" || got[0].IntervalDays != 3 {
		t.Errorf("reminder fields lost in round trip: %+v", got[0])
	}
	if !got[0].NextDue.Equal(r.NextDue) {
		t.Errorf("NextDue = %v, want %v", got[0].NextDue, r.NextDue)
	}
	if len(got[0].History) != 1 || !got[0].History[0].Equal(now) {
		t.Errorf("history lost in round trip: %v", got[0].History)
	}
}

func TestJSONStore_SaveReminderUpsertsByID(t *testing.T) {
	store := newInitializedStore(t)
	now := time.Now()

	r := models.Reminder{ID: "r1", PlantName: "Monstera", IntervalDays: 3, LastDone: now, NextDue: models.DueFrom(now, 3)}
	if err := store.SaveReminder(r); err != nil {
		t.Fatal(err)
	}
	r.IntervalDays = 7
	if err := store.SaveReminder(r); err != nil {
		t.Fatal(err)
	}

	got, _ := store.GetAllReminders()
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 after upsert", len(got))
	}
	if got[0].IntervalDays != 7 {
		t.Errorf("IntervalDays = %d, want 7", got[0].IntervalDays)
	}
}

func TestJSONStore_DeleteReminderMissingIDIsNoOp(t *testing.T) {
	store := newInitializedStore(t)
	if err := store.DeleteReminder("missing"); err != nil {
		t.Fatalf("delete of missing id should not error: %v", err)
	}
}

func TestJSONStore_SettingsRoundTrip(t *testing.T) {
	store := newInitializedStore(t)
	want := models.Settings{Theme: "dark", GroupMode: "type", SortMode: "name"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatal(err)
	}

	fresh := NewJSONStore(store.GetConfigPath())
	if err := fresh.Load(); err != nil {
		t.Fatal(err)
	}
	got, err := fresh.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}
