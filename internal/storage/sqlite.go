// Package storage keeps the round journal of a running process in an
// in-memory SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID         string
	Skin       string
	Score      uint32
	Highscore  uint32
	EvilHits   int
	HeroHits   int
	SuperHits  int
	Supers     int
	DurationMs uint64
	Seed       uint32
	Algorithm  string
	Difficulty string
	CreatedAt  time.Time
}

// Open creates an empty in-memory journal and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			skin TEXT NOT NULL,
			score INTEGER NOT NULL,
			highscore INTEGER NOT NULL,
			evil_hits INTEGER NOT NULL DEFAULT 0,
			hero_hits INTEGER NOT NULL DEFAULT 0,
			super_hits INTEGER NOT NULL DEFAULT 0,
			supers INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			algorithm TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			seq INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_skin ON rounds(skin);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database and discards the journal.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound stores r under a fresh ID and returns the ID.
func (s *Store) SaveRound(r Round) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, skin, score, highscore, evil_hits, hero_hits, super_hits, supers,
		  duration_ms, seed, algorithm, difficulty, seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		         (SELECT COALESCE(MAX(seq), 0) + 1 FROM rounds))`,
		id, r.Skin, int64(r.Score), int64(r.Highscore), r.EvilHits, r.HeroHits, r.SuperHits, r.Supers,
		int64(r.DurationMs), int64(r.Seed), r.Algorithm, r.Difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// RecordRound journals a finished session round.
func (s *Store) RecordRound(sum shooter.RoundSummary) error {
	_, err := s.SaveRound(Round{
		Skin:       sum.Skin,
		Score:      sum.Score,
		Highscore:  sum.Highscore,
		EvilHits:   sum.EvilHits,
		HeroHits:   sum.HeroHits,
		SuperHits:  sum.SuperHits,
		Supers:     sum.Supers,
		DurationMs: sum.EndedAt - sum.StartedAt,
		Seed:       sum.Seed,
		Algorithm:  sum.Algorithm,
		Difficulty: sum.Difficulty,
	})
	return err
}

var _ shooter.RoundRecorder = (*Store)(nil)

const roundColumns = `id, skin, score, highscore, evil_hits, hero_hits, super_hits, supers,
		        duration_ms, seed, algorithm, difficulty, created_at`

// TopRounds returns the best rounds, highest score first. An empty skin
// means every skin. Ties keep journal order.
func (s *Store) TopRounds(skin string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = '' OR skin = ?
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		skin, skin, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID returns the round with the given ID, or nil if there is none.
func (s *Store) RoundByID(id string) (*Round, error) {
	rows, err := s.db.Query(`SELECT `+roundColumns+` FROM rounds WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	rounds, err := scanRounds(rows)
	if err != nil || len(rounds) == 0 {
		return nil, err
	}
	return &rounds[0], nil
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Skin, &r.Score, &r.Highscore,
			&r.EvilHits, &r.HeroHits, &r.SuperHits, &r.Supers,
			&r.DurationMs, &r.Seed, &r.Algorithm, &r.Difficulty, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// HighScore returns the best score for skin, or across all skins when skin
// is empty. Returns 0 if no rounds exist.
func (s *Store) HighScore(skin string) (uint32, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE ? = '' OR skin = ?",
		skin, skin,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return uint32(score.Int64), nil
}

// SkinStats contains aggregated statistics for one skin.
type SkinStats struct {
	Skin       string
	Rounds     int
	HighScore  uint32
	AvgScore   float64
	TotalScore int64
	EvilHits   int64
	HeroHits   int64
	SuperHits  int64
	LastPlayed time.Time
}

// Stats returns aggregated statistics per skin.
func (s *Store) Stats() (map[string]*SkinStats, error) {
	rows, err := s.db.Query(
		`SELECT skin, COUNT(*), MAX(score), AVG(score), SUM(score),
		        SUM(evil_hits), SUM(hero_hits), SUM(super_hits), MAX(created_at)
		 FROM rounds
		 GROUP BY skin`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SkinStats)
	for rows.Next() {
		var st SkinStats
		var lastPlayed any
		if err := rows.Scan(&st.Skin, &st.Rounds, &st.HighScore, &st.AvgScore, &st.TotalScore,
			&st.EvilHits, &st.HeroHits, &st.SuperHits, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Skin] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Count returns the number of journaled rounds.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// Clear empties the journal.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the driver's string layout.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
