package sqlite

import (
	"time"

	"github.com/akarpova/trackly/internal/constants"
	"github.com/akarpova/trackly/internal/logger"
	"github.com/akarpova/trackly/internal/models"
)

// GetRecords returns every completion record, unordered. Rows with an
// unparsable day are skipped and logged.
func (s *Store) GetRecords() ([]models.Record, error) {
	rows, err := s.db.Query("SELECT tracker_id, day FROM records")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var trackerID, day string
		if err := rows.Scan(&trackerID, &day); err != nil {
			return nil, err
		}
		parsed, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
		if err != nil {
			logger.Error("Skipping record with malformed day", "tracker", trackerID, "day", day, "error", err)
			continue
		}
		records = append(records, models.Record{TrackerID: trackerID, Day: parsed})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// AddRecord inserts a completion fact unconditionally. Duplicate
// (tracker, day) pairs are not rejected here; callers rely on the
// delete-then-absence flow.
func (s *Store) AddRecord(r models.Record) error {
	day := models.StartOfDay(r.Day).Format(constants.DateFormat)
	_, err := s.db.Exec("INSERT INTO records (tracker_id, day) VALUES (?, ?)", r.TrackerID, day)
	return err
}

// DeleteRecord removes a single row matching (trackerID, start-of-day).
// A no-op when no row matches.
func (s *Store) DeleteRecord(r models.Record) error {
	day := models.StartOfDay(r.Day).Format(constants.DateFormat)
	_, err := s.db.Exec(`
		DELETE FROM records WHERE rowid IN (
			SELECT rowid FROM records WHERE tracker_id = ? AND day = ? LIMIT 1
		)`, r.TrackerID, day)
	return err
}
