package storage

import (
	"fmt"
	"time"
)

// Run sources.
const (
	SourcePlay     = "play"
	SourceWindow   = "window"
	SourceSimulate = "simulate"
)

// RunRecord is the summary of one finished session.
type RunRecord struct {
	ID          int64
	MapID       string
	Source      string // play, window or simulate
	Difficulty  string
	Seed        int64
	Score       int
	Ticks       int
	Hardness    int // hardness reached
	Kills       int
	Breaches    int
	Spawned     int
	Upgrades    int
	HoneySpent  int
	DamageDealt int
	CreatedAt   time.Time
}

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (map_id, source, difficulty, seed, score, ticks, hardness, kills, breaches, spawned, upgrades, honey_spent, damage_dealt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MapID, r.Source, r.Difficulty, r.Seed, r.Score, r.Ticks, r.Hardness,
		r.Kills, r.Breaches, r.Spawned, r.Upgrades, r.HoneySpent, r.DamageDealt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs, newest first. An empty mapID
// returns runs of every map.
func (s *Store) RecentRuns(mapID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, source, difficulty, seed, score, ticks, hardness,
		        kills, breaches, spawned, upgrades, honey_spent, damage_dealt, created_at
		 FROM runs
		 WHERE ? = '' OR map_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mapID, mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.MapID, &r.Source, &r.Difficulty, &r.Seed, &r.Score, &r.Ticks, &r.Hardness,
			&r.Kills, &r.Breaches, &r.Spawned, &r.Upgrades, &r.HoneySpent, &r.DamageDealt, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// CountRuns returns how many runs are stored for a map, or for all maps
// when mapID is empty.
func (s *Store) CountRuns(mapID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE ? = '' OR map_id = ?",
		mapID, mapID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes the run history of a map and reports how many runs were
// removed.
func (s *Store) ClearRuns(mapID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE map_id = ?", mapID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs of %s: %w", mapID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}
