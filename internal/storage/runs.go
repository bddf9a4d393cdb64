package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// RunEntry is a stored level attempt.
type RunEntry struct {
	ID        int64
	GameID    string
	Run       core.LevelRun
	CreatedAt time.Time
}

// LevelStat aggregates the attempts at one level.
type LevelStat struct {
	LevelID   string
	Attempts  int
	Clears    int
	Deaths    int
	BestTime  time.Duration // Fastest clear; zero if never cleared
	MostCoins int
}

// SaveRuns records finished level attempts in one transaction.
func (s *Store) SaveRuns(gameID string, runs []core.LevelRun) error {
	if len(runs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot save runs: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(
		`INSERT INTO level_runs (game_id, level_id, outcome, duration_ms, coins)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save runs: %w", err)
	}
	defer stmt.Close()

	for _, r := range runs {
		if _, err := stmt.Exec(gameID, r.LevelID, string(r.Outcome), r.Duration.Milliseconds(), r.Coins); err != nil {
			return fmt.Errorf("storage: cannot save run for %s: %w", r.LevelID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot save runs: %w", err)
	}
	return nil
}

// BestRuns returns the fastest clears of a level, fastest first.
// A non-positive limit means 10.
func (s *Store) BestRuns(gameID, levelID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, outcome, duration_ms, coins, created_at
		 FROM level_runs
		 WHERE game_id = ? AND level_id = ? AND outcome = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, levelID, string(core.OutcomeCleared), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e         RunEntry
			outcome   string
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Run.LevelID, &outcome, &ms, &e.Run.Coins, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Run.Outcome = core.RunOutcome(outcome)
		e.Run.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// LevelStats aggregates attempts per level for a game, ordered by level id.
func (s *Store) LevelStats(gameID string) ([]LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_id,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN duration_ms END), 0),
		        COALESCE(MAX(coins), 0)
		 FROM level_runs
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		string(core.OutcomeCleared), string(core.OutcomeDied), string(core.OutcomeCleared), gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStat
	for rows.Next() {
		var st LevelStat
		var bestMS int64
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Clears, &st.Deaths, &bestMS, &st.MostCoins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMS) * time.Millisecond
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
