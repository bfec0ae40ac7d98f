package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sol-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSnapshotSaveLoad(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, KeyUI, []byte(`{"note":"hello"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, KeyUI)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"note":"hello"}` {
		t.Errorf("unexpected data %q", got)
	}
}

func TestSnapshotSaveReplaces(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, KeyUI, []byte("v1")); err != nil {
		t.Fatalf("save v1: %v", err)
	}
	if err := store.Save(ctx, KeyUI, []byte("v2")); err != nil {
		t.Fatalf("save v2: %v", err)
	}
	got, err := store.Load(ctx, KeyUI)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("expected latest snapshot, got %q", got)
	}
}

func TestSnapshotLoadMissing(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Load(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUIStateRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	state := UIState{
		Frequencies:      map[string]int{"Safari": 3},
		EmojiFrequencies: map[string]int{"🔥": 2},
		Favorites:        []string{"Safari", "Settings"},
		CustomItems:      []CustomItemState{{Name: "Mail", Icon: "✉️", Text: "https://mail.example.com"}},
		Projects: []ProjectState{{
			ID:      "p1",
			Name:    "deep work",
			Periods: []PeriodState{{ID: "per1", Start: 1770000000000, End: 1770003600000}},
		}},
		CurrentProjectID: "p1",
		Note:             "scratch",
		Settings:         SettingsState{GithubSearchEnabled: true, CalendarEnabled: true},
	}
	if err := SaveUIState(ctx, store, state); err != nil {
		t.Fatalf("save state: %v", err)
	}

	got, err := LoadUIState(ctx, store)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if got.Frequencies["Safari"] != 3 {
		t.Errorf("frequencies lost: %#v", got.Frequencies)
	}
	if len(got.Projects) != 1 || got.Projects[0].Periods[0].End != 1770003600000 {
		t.Errorf("projects lost: %#v", got.Projects)
	}
	if got.CurrentProjectID != "p1" || got.Note != "scratch" {
		t.Errorf("scalar state lost: %#v", got)
	}
	if !got.Settings.GithubSearchEnabled {
		t.Error("settings lost")
	}
}

func TestLoadUIStateFirstRun(t *testing.T) {
	store := setupStore(t)
	got, err := LoadUIState(context.Background(), store)
	if err != nil {
		t.Fatalf("load on empty store: %v", err)
	}
	if !got.Settings.CalendarEnabled || !got.Settings.ShowAllDayEvents {
		t.Errorf("first run should carry default settings, got %#v", got.Settings)
	}
	if got.Settings.GithubSearchEnabled {
		t.Error("remote repo search must default off")
	}
}
