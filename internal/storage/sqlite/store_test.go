package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/akarpova/trackly/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "trackly.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testHabit(id, title string) models.Tracker {
	return models.Tracker{
		ID:       id,
		Title:    title,
		Color:    "green",
		Emoji:    "🙂",
		Schedule: models.Schedule{models.Tuesday, models.Thursday},
		IsHabit:  true,
	}
}

func TestAddCategoryIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddCategory("Health"); err != nil {
		t.Fatalf("first AddCategory failed: %v", err)
	}
	if err := store.AddCategory("Health"); err != nil {
		t.Fatalf("second AddCategory failed: %v", err)
	}

	categories, skipped, err := store.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(categories) != 1 || categories[0].Title != "Health" {
		t.Errorf("categories = %+v, want exactly one Health", categories)
	}
}

func TestCategoriesOrderedByTitle(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"Work", "Health", "Leisure"} {
		if err := store.AddCategory(name); err != nil {
			t.Fatalf("AddCategory(%s) failed: %v", name, err)
		}
	}

	categories, _, err := store.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	want := []string{"Health", "Leisure", "Work"}
	if len(categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(categories), len(want))
	}
	for i, name := range want {
		if categories[i].Title != name {
			t.Errorf("categories[%d] = %s, want %s", i, categories[i].Title, name)
		}
	}
}

func TestAddTrackerToMissingCategoryIsNoOp(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddTracker(testHabit("t1", "Run"), "Nope"); err != nil {
		t.Fatalf("AddTracker returned error: %v", err)
	}

	categories, _, err := store.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("categories = %+v, want none", categories)
	}
}

func TestTrackerRoundTrip(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}
	in := testHabit("t1", "Run")
	in.IsPinned = true
	if err := store.AddTracker(in, "Health"); err != nil {
		t.Fatalf("AddTracker failed: %v", err)
	}

	categories, _, err := store.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 1 || len(categories[0].Trackers) != 1 {
		t.Fatalf("unexpected fetch result: %+v", categories)
	}
	got := categories[0].Trackers[0]
	if got.ID != in.ID || got.Title != in.Title || got.Color != in.Color ||
		got.Emoji != in.Emoji || !got.IsHabit || !got.IsPinned {
		t.Errorf("tracker round-trip mismatch: got %+v, want %+v", got, in)
	}
	if got.Schedule.String() != in.Schedule.String() {
		t.Errorf("schedule round-trip = %q, want %q", got.Schedule.String(), in.Schedule.String())
	}
}

func TestUpdateTrackerReassignsCategory(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"Health", "Work"} {
		if err := store.AddCategory(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.AddTracker(testHabit("t1", "Run"), "Health"); err != nil {
		t.Fatal(err)
	}

	updated := testHabit("t1", "Evening run")
	updated.Color = "blue"
	if err := store.UpdateTracker(updated, "Work"); err != nil {
		t.Fatalf("UpdateTracker failed: %v", err)
	}

	owner, err := store.GetCategoryByTracker("t1")
	if err != nil {
		t.Fatalf("GetCategoryByTracker failed: %v", err)
	}
	if owner != "Work" {
		t.Errorf("owner = %q, want Work", owner)
	}

	categories, _, _ := store.GetCategories()
	for _, c := range categories {
		if c.Title == "Health" && len(c.Trackers) != 0 {
			t.Error("tracker should have left Health")
		}
		if c.Title == "Work" {
			if len(c.Trackers) != 1 || c.Trackers[0].Title != "Evening run" || c.Trackers[0].Color != "blue" {
				t.Errorf("Work trackers = %+v, want the updated tracker", c.Trackers)
			}
		}
	}
}

func TestUpdateUnknownTrackerIsNoOp(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}

	if err := store.UpdateTracker(testHabit("ghost", "Ghost"), "Health"); err != nil {
		t.Fatalf("UpdateTracker returned error: %v", err)
	}

	categories, _, _ := store.GetCategories()
	if len(categories[0].Trackers) != 0 {
		t.Errorf("update of unknown id should not insert, got %+v", categories[0].Trackers)
	}
}

func TestDeleteTrackerRequiresCategoryMatch(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddTracker(testHabit("t1", "Run"), "Health"); err != nil {
		t.Fatal(err)
	}

	// Wrong category: nothing happens.
	if err := store.DeleteTracker("t1", "Work"); err != nil {
		t.Fatalf("DeleteTracker returned error: %v", err)
	}
	categories, _, _ := store.GetCategories()
	if len(categories[0].Trackers) != 1 {
		t.Fatal("tracker should survive a delete with the wrong category")
	}

	if err := store.DeleteTracker("t1", "Health"); err != nil {
		t.Fatalf("DeleteTracker failed: %v", err)
	}
	categories, _, _ = store.GetCategories()
	if len(categories[0].Trackers) != 0 {
		t.Error("tracker should be gone after compound-match delete")
	}
}

func TestSetTrackerPinned(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddTracker(testHabit("t1", "Run"), "Health"); err != nil {
		t.Fatal(err)
	}

	if err := store.SetTrackerPinned("t1", true); err != nil {
		t.Fatalf("SetTrackerPinned failed: %v", err)
	}
	categories, _, _ := store.GetCategories()
	if !categories[0].Trackers[0].IsPinned {
		t.Error("tracker should be pinned")
	}

	if err := store.SetTrackerPinned("t1", false); err != nil {
		t.Fatalf("unpin failed: %v", err)
	}
	categories, _, _ = store.GetCategories()
	if categories[0].Trackers[0].IsPinned {
		t.Error("tracker should be unpinned")
	}
}

func TestGetCategoryByTrackerUnknownID(t *testing.T) {
	store := newTestStore(t)
	owner, err := store.GetCategoryByTracker("missing")
	if err != nil {
		t.Fatalf("GetCategoryByTracker returned error: %v", err)
	}
	if owner != "" {
		t.Errorf("owner = %q, want empty", owner)
	}
}

func TestRecordLifecycle(t *testing.T) {
	store := newTestStore(t)
	day := time.Date(2025, 6, 3, 14, 30, 0, 0, time.Local)

	if err := store.AddRecord(models.NewRecord("t1", day)); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	wantDay := time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local)
	if !records[0].Day.Equal(wantDay) {
		t.Errorf("record day = %v, want start-of-day %v", records[0].Day, wantDay)
	}

	// Delete matches on start-of-day regardless of the time supplied.
	evening := time.Date(2025, 6, 3, 23, 0, 0, 0, time.Local)
	if err := store.DeleteRecord(models.NewRecord("t1", evening)); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	records, _ = store.GetRecords()
	if len(records) != 0 {
		t.Errorf("got %d records after delete, want 0", len(records))
	}

	// Deleting again is a no-op.
	if err := store.DeleteRecord(models.NewRecord("t1", day)); err != nil {
		t.Fatalf("second DeleteRecord returned error: %v", err)
	}
}

// Documents the current duplicate-insert gap: AddRecord does not reject
// a second record for the same (tracker, day), and DeleteRecord removes
// only one of them. A future upsert would be a visible behavior change.
func TestDuplicateRecordsAllowed(t *testing.T) {
	store := newTestStore(t)
	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local)

	for i := 0; i < 2; i++ {
		if err := store.AddRecord(models.NewRecord("t1", day)); err != nil {
			t.Fatalf("AddRecord %d failed: %v", i, err)
		}
	}
	records, _ := store.GetRecords()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 duplicates", len(records))
	}

	if err := store.DeleteRecord(models.NewRecord("t1", day)); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	records, _ = store.GetRecords()
	if len(records) != 1 {
		t.Errorf("got %d records, want 1: delete removes a single row", len(records))
	}
}

// Documents the current orphan gap: deleting a tracker leaves its
// completion records in place. A future cascade would be a visible
// behavior change.
func TestDeleteTrackerLeavesRecordsOrphaned(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddTracker(testHabit("t1", "Run"), "Health"); err != nil {
		t.Fatal(err)
	}
	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local)
	if err := store.AddRecord(models.NewRecord("t1", day)); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteTracker("t1", "Health"); err != nil {
		t.Fatalf("DeleteTracker failed: %v", err)
	}

	records, err := store.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want the orphaned record to survive", len(records))
	}
}

func TestGetCategoriesSkipsMalformedScheduleRows(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddTracker(testHabit("good", "Run"), "Health"); err != nil {
		t.Fatal(err)
	}

	// Corrupt a row behind the store's back.
	_, err := store.GetDB().Exec(`
		INSERT INTO trackers (id, title, color, emoji, schedule, is_habit, is_pinned, category_title)
		VALUES ('bad', 'Broken', 'red', '😱', 'not-a-schedule', 1, 0, 'Health')`)
	if err != nil {
		t.Fatalf("failed to insert corrupt row: %v", err)
	}

	categories, skipped, err := store.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(categories) != 1 || len(categories[0].Trackers) != 1 || categories[0].Trackers[0].ID != "good" {
		t.Errorf("fetch should keep the good row only, got %+v", categories)
	}
}

func TestDroppedCategoryCountsEveryRowAsSkipped(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"Health", "Work"} {
		if err := store.AddCategory(name); err != nil {
			t.Fatal(err)
		}
	}

	// Sabotage the trackers table behind the store's back so every
	// per-category fetch fails.
	if _, err := store.GetDB().Exec("DROP TABLE trackers"); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	categories, skipped, err := store.GetCategories()
	if err != nil {
		t.Fatalf("GetCategories should fail soft, got error: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("categories = %+v, want none once their trackers are unreadable", categories)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2 (at least one per dropped category)", skipped)
	}
}

func TestLoadFailsWithoutInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load on a missing database should fail")
	}
}
