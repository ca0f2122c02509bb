package storage

import "github.com/akarpova/trackly/internal/models"

// Provider is the persistence boundary for categories, trackers and
// completion records. Not-found on update/delete is a silent no-op;
// fetches skip rows that fail to decode instead of aborting.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Categories
	// GetCategories returns all categories ordered by title ascending,
	// each with its fully materialized tracker list. The int is the
	// number of rows skipped because they failed to decode.
	GetCategories() ([]models.Category, int, error)
	// AddCategory creates an empty category; it is a no-op when a
	// category with that title already exists.
	AddCategory(name string) error
	// GetCategoryByTracker returns the title of the category that owns
	// the given tracker id, or "" when the tracker does not exist.
	GetCategoryByTracker(trackerID string) (string, error)

	// Trackers
	// AddTracker is a silent no-op when the named category does not exist.
	AddTracker(t models.Tracker, category string) error
	// UpdateTracker overwrites all mutable fields and reassigns the
	// category; a silent no-op when the tracker id does not exist.
	UpdateTracker(t models.Tracker, category string) error
	// DeleteTracker deletes by (id, category) compound match. The
	// tracker's completion records are NOT deleted.
	DeleteTracker(trackerID, category string) error
	SetTrackerPinned(trackerID string, pinned bool) error

	// Records
	GetRecords() ([]models.Record, error)
	// AddRecord inserts unconditionally; callers guard against
	// duplicates through the delete-then-absence flow.
	AddRecord(models.Record) error
	// DeleteRecord removes one row matching (trackerID, start-of-day);
	// a no-op when none match.
	DeleteRecord(models.Record) error

	// Utils
	GetConfigPath() string
}
