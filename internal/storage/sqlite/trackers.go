package sqlite

import (
	"github.com/akarpova/trackly/internal/logger"
	"github.com/akarpova/trackly/internal/models"
)

// AddTracker inserts a tracker into the named category. When the
// category does not exist the call is a silent no-op, matching the
// store's not-found policy.
func (s *Store) AddTracker(t models.Tracker, category string) error {
	exists, err := s.categoryExists(category)
	if err != nil {
		return err
	}
	if !exists {
		logger.Debug("Ignoring tracker for unknown category", "category", category, "tracker", t.Title)
		return nil
	}

	_, err = s.db.Exec(`
		INSERT INTO trackers (id, title, color, emoji, schedule, is_habit, is_pinned, category_title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			color = excluded.color,
			emoji = excluded.emoji,
			schedule = excluded.schedule,
			is_habit = excluded.is_habit,
			is_pinned = excluded.is_pinned,
			category_title = excluded.category_title`,
		t.ID, t.Title, t.Color, t.Emoji, t.Schedule.String(), t.IsHabit, t.IsPinned, category)
	return err
}

// UpdateTracker overwrites all mutable fields of the persisted tracker
// and reassigns its category. Unknown tracker ids are a silent no-op.
func (s *Store) UpdateTracker(t models.Tracker, category string) error {
	exists, err := s.categoryExists(category)
	if err != nil {
		return err
	}
	if !exists {
		logger.Debug("Ignoring tracker update for unknown category", "category", category, "tracker", t.ID)
		return nil
	}

	_, err = s.db.Exec(`
		UPDATE trackers
		SET title = ?, color = ?, emoji = ?, schedule = ?, is_habit = ?, is_pinned = ?, category_title = ?
		WHERE id = ?`,
		t.Title, t.Color, t.Emoji, t.Schedule.String(), t.IsHabit, t.IsPinned, category, t.ID)
	return err
}

// DeleteTracker deletes by (id, category) compound match. Completion
// records for the tracker are left in place; the caller owns cascade
// decisions.
func (s *Store) DeleteTracker(trackerID, category string) error {
	_, err := s.db.Exec("DELETE FROM trackers WHERE id = ? AND category_title = ?", trackerID, category)
	return err
}

// SetTrackerPinned flips the pin flag by tracker id, independent of the
// owning category.
func (s *Store) SetTrackerPinned(trackerID string, pinned bool) error {
	_, err := s.db.Exec("UPDATE trackers SET is_pinned = ? WHERE id = ?", pinned, trackerID)
	return err
}

// getTrackersForCategory materializes a category's trackers in insertion
// order. Rows with an undecodable schedule are skipped and counted, not
// fatal.
func (s *Store) getTrackersForCategory(category string) ([]models.Tracker, int, error) {
	rows, err := s.db.Query(`
		SELECT id, title, color, emoji, schedule, is_habit, is_pinned
		FROM trackers WHERE category_title = ? ORDER BY rowid`, category)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	skipped := 0
	var trackers []models.Tracker
	for rows.Next() {
		var t models.Tracker
		var rawSchedule string
		if err := rows.Scan(&t.ID, &t.Title, &t.Color, &t.Emoji, &rawSchedule, &t.IsHabit, &t.IsPinned); err != nil {
			logger.Error("Skipping undecodable tracker row", "category", category, "error", err)
			skipped++
			continue
		}
		schedule, err := models.ParseSchedule(rawSchedule)
		if err != nil {
			logger.Error("Skipping tracker with malformed schedule", "tracker", t.ID, "schedule", rawSchedule, "error", err)
			skipped++
			continue
		}
		t.Schedule = schedule
		trackers = append(trackers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, skipped, err
	}

	return trackers, skipped, nil
}
