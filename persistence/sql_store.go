// persistence/sql_store.go
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/wfunc/hangman/models"
)

// SQLStore implements Store on database/sql. The same schema and queries
// serve SQLite and PostgreSQL; only placeholders differ.
type SQLStore struct {
	db      *sql.DB
	dollars bool // PostgreSQL style $1 placeholders
}

// OpenSQLite opens (and creates if missing) a SQLite database file.
func OpenSQLite(path string) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection avoids SQLITE_BUSY between the game loop's writes.
	db.SetMaxOpenConns(1)

	return newSQLStore(db, false)
}

// OpenPostgres connects to PostgreSQL through lib/pq.
func OpenPostgres(dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return newSQLStore(db, true)
}

func newSQLStore(db *sql.DB, dollars bool) (*SQLStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := initTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}
	return &SQLStore{db: db, dollars: dollars}, nil
}

// initTables creates the tables shared by both dialects.
func initTables(ctx context.Context, db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS saved_rounds (
			slot TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS game_records (
			round_id TEXT PRIMARY KEY,
			secret_word TEXT NOT NULL,
			outcome TEXT NOT NULL,
			wrong_guesses INTEGER NOT NULL,
			total_guesses INTEGER NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_records_outcome ON game_records(outcome)`,
	}
	for _, query := range schemas {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $n for PostgreSQL.
func (s *SQLStore) rebind(query string) string {
	if !s.dollars {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLStore) SaveRound(ctx context.Context, slot string, data []byte) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO saved_rounds (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`),
		slot, string(data), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save round %q: %w", slot, err)
	}
	return nil
}

func (s *SQLStore) LoadRound(ctx context.Context, slot string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT data FROM saved_rounds WHERE slot = ?`), slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load round %q: %w", slot, err)
	}
	return []byte(data), nil
}

func (s *SQLStore) SaveGameRecord(ctx context.Context, record models.GameRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO game_records (round_id, secret_word, outcome, wrong_guesses, total_guesses, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (round_id) DO NOTHING`),
		record.RoundID, record.SecretWord, record.Outcome,
		record.WrongGuesses, record.TotalGuesses, createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save game record %s: %w", record.RoundID, err)
	}
	return nil
}

func (s *SQLStore) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		FROM game_records`),
		models.OutcomeWin, models.OutcomeLose,
	).Scan(&stats.TotalGames, &stats.Wins, &stats.Losses)
	if err != nil {
		return models.Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return stats, nil
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
