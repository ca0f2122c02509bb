package sqlite

import (
	"database/sql"
	"errors"

	"github.com/akarpova/trackly/internal/logger"
	"github.com/akarpova/trackly/internal/models"
)

// GetCategories returns all categories ordered by title ascending, each
// with its tracker list in insertion order. Tracker rows that fail to
// decode are skipped and logged; the second return value is the skip
// count.
func (s *Store) GetCategories() ([]models.Category, int, error) {
	rows, err := s.db.Query("SELECT title FROM categories ORDER BY title ASC")
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, 0, err
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	skipped := 0
	categories := make([]models.Category, 0, len(titles))
	for _, title := range titles {
		trackers, n, err := s.getTrackersForCategory(title)
		if err != nil {
			// Fail soft: keep the categories that did load, and count
			// every row the dropped category held so the skip count
			// stays row-granular.
			logger.Error("Dropping category, trackers failed to load", "category", title, "error", err)
			skipped += s.countTrackers(title)
			continue
		}
		skipped += n
		categories = append(categories, models.Category{Title: title, Trackers: trackers})
	}

	return categories, skipped, nil
}

// AddCategory creates an empty category. Idempotent: adding an existing
// title is a no-op.
func (s *Store) AddCategory(name string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO categories (title) VALUES (?)", name)
	return err
}

// GetCategoryByTracker is the reverse lookup from tracker id to owning
// category title. Returns "" when the tracker does not exist.
func (s *Store) GetCategoryByTracker(trackerID string) (string, error) {
	var title string
	err := s.db.QueryRow("SELECT category_title FROM trackers WHERE id = ?", trackerID).Scan(&title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return title, nil
}

// countTrackers reports how many rows a category holds, used to keep
// the skip count row-granular when a whole category fails to load.
// Falls back to 1 when the count itself cannot be read.
func (s *Store) countTrackers(category string) int {
	var n int
	if err := s.db.QueryRow("SELECT count(*) FROM trackers WHERE category_title = ?", category).Scan(&n); err != nil || n < 1 {
		return 1
	}
	return n
}

func (s *Store) categoryExists(name string) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM categories WHERE title = ?", name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
