// Package tracking is the façade the presentation layer talks to. It
// orchestrates the category, tracker and record operations of the store
// and fans out a payload-free change notification after every mutation;
// subscribers are expected to refetch.
package tracking

import (
	"time"

	"github.com/akarpova/trackly/internal/models"
	"github.com/akarpova/trackly/internal/storage"
	"github.com/akarpova/trackly/internal/visibility"
)

type Service struct {
	store       storage.Provider
	subscribers []func()
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Subscribe registers a callback invoked synchronously, on the mutating
// goroutine, after every successful mutation.
func (s *Service) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Categories returns all categories with their trackers, plus the number
// of rows the store skipped because they failed to decode.
func (s *Service) Categories() ([]models.Category, int, error) {
	return s.store.GetCategories()
}

// CategoriesAmount is the derived category count.
func (s *Service) CategoriesAmount() (int, error) {
	categories, _, err := s.store.GetCategories()
	if err != nil {
		return 0, err
	}
	return len(categories), nil
}

func (s *Service) Records() ([]models.Record, error) {
	return s.store.GetRecords()
}

// CompletedCount is the total number of completion records, the figure
// behind the statistics screen.
func (s *Service) CompletedCount() (int, error) {
	records, err := s.store.GetRecords()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *Service) AddCategory(name string) error {
	if err := s.store.AddCategory(name); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Service) AddTracker(t models.Tracker, category string) error {
	if err := s.store.AddTracker(t, category); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Service) UpdateTracker(t models.Tracker, category string) error {
	if err := s.store.UpdateTracker(t, category); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Service) DeleteTracker(trackerID, category string) error {
	if err := s.store.DeleteTracker(trackerID, category); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Service) TogglePin(trackerID string, pinned bool) error {
	if err := s.store.SetTrackerPinned(trackerID, pinned); err != nil {
		return err
	}
	s.notify()
	return nil
}

// CategoryByTracker restores the true category name of a tracker that is
// being displayed inside the synthetic pinned section.
func (s *Service) CategoryByTracker(trackerID string) (string, error) {
	return s.store.GetCategoryByTracker(trackerID)
}

func (s *Service) AddRecord(r models.Record) error {
	if err := s.store.AddRecord(r); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Service) DeleteRecord(r models.Record) error {
	if err := s.store.DeleteRecord(r); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Visible fetches the current snapshot and runs the visibility filter
// over it.
func (s *Service) Visible(q visibility.Query) ([]visibility.Section, error) {
	categories, _, err := s.store.GetCategories()
	if err != nil {
		return nil, err
	}
	records, err := s.store.GetRecords()
	if err != nil {
		return nil, err
	}
	return visibility.Filter(categories, records, q), nil
}

// CompletedOn reports whether the tracker has a completion record on the
// given day within an already-fetched snapshot.
func CompletedOn(records []models.Record, trackerID string, day time.Time) bool {
	for _, r := range records {
		if r.TrackerID == trackerID && models.SameDay(r.Day, day) {
			return true
		}
	}
	return false
}
