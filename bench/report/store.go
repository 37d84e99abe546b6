// Package report persists and renders benchmark session results.
//
// Sessions are stored in a local sqlite database so that runs on
// different machines or branches can be compared later; the validated
// chunk snapshot of each session is kept zstd-compressed for audit.
// The cache under test stays memory-only; only harness results are
// written here.
package report

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/voxelforge/carvecache/bench"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id           TEXT PRIMARY KEY,
	started_at   TIMESTAMP NOT NULL,
	cases        INTEGER NOT NULL,
	trials       INTEGER NOT NULL,
	min_radius   INTEGER NOT NULL,
	max_radius   INTEGER NOT NULL,
	seed         BIGINT NOT NULL,
	parallelism  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS summaries (
	session_id TEXT NOT NULL REFERENCES sessions(id),
	strategy   TEXT NOT NULL,
	count      INTEGER NOT NULL,
	mean_ns    DOUBLE NOT NULL,
	stddev_ns  DOUBLE NOT NULL,
	min_ns     DOUBLE NOT NULL,
	max_ns     DOUBLE NOT NULL,
	p50_ns     DOUBLE NOT NULL,
	p90_ns     DOUBLE NOT NULL,
	p99_ns     DOUBLE NOT NULL,
	PRIMARY KEY (session_id, strategy)
);
CREATE TABLE IF NOT EXISTS snapshots (
	session_id TEXT PRIMARY KEY REFERENCES sessions(id),
	cells      BLOB NOT NULL
);
`

// Store persists benchmark sessions in a sqlite database.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens (and if needed initializes) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("report: init schema: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, enc: enc, dec: dec}, nil
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

// SaveSession persists one session and returns its generated ID.
func (s *Store) SaveSession(ctx context.Context, cfg bench.Config, out *bench.Outcome) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, cases, trials, min_radius, max_radius, seed, parallelism)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), cfg.Cases, cfg.Trials, cfg.MinRadius, cfg.MaxRadius, cfg.Seed, cfg.Parallelism)
	if err != nil {
		return "", fmt.Errorf("report: insert session: %w", err)
	}

	for _, res := range out.Results {
		sm := res.Summary
		_, err = tx.ExecContext(ctx,
			`INSERT INTO summaries (session_id, strategy, count, mean_ns, stddev_ns, min_ns, max_ns, p50_ns, p90_ns, p99_ns)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, res.Strategy, sm.Count, sm.MeanNanos, sm.StdDevNanos, sm.MinNanos, sm.MaxNanos, sm.P50Nanos, sm.P90Nanos, sm.P99Nanos)
		if err != nil {
			return "", fmt.Errorf("report: insert summary %s: %w", res.Strategy, err)
		}
	}

	if out.Snapshot != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO snapshots (session_id, cells) VALUES (?, ?)`,
			id, s.compressCells(out.Snapshot))
		if err != nil {
			return "", fmt.Errorf("report: insert snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Summaries loads the stored per-strategy summaries of a session.
func (s *Store) Summaries(ctx context.Context, sessionID string) ([]bench.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT strategy, count, mean_ns, stddev_ns, min_ns, max_ns, p50_ns, p90_ns, p99_ns
		 FROM summaries WHERE session_id = ? ORDER BY strategy`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []bench.Result
	for rows.Next() {
		var res bench.Result
		sm := &res.Summary
		if err := rows.Scan(&res.Strategy, &sm.Count, &sm.MeanNanos, &sm.StdDevNanos,
			&sm.MinNanos, &sm.MaxNanos, &sm.P50Nanos, &sm.P90Nanos, &sm.P99Nanos); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// Snapshot loads and decompresses the stored chunk snapshot of a
// session.
func (s *Store) Snapshot(ctx context.Context, sessionID string) ([]int32, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT cells FROM snapshots WHERE session_id = ?`, sessionID).Scan(&blob)
	if err != nil {
		return nil, err
	}
	return s.decompressCells(blob)
}

func (s *Store) compressCells(cells []int32) []byte {
	raw := make([]byte, 4*len(cells))
	for i, v := range cells {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(v))
	}
	return s.enc.EncodeAll(raw, nil)
}

func (s *Store) decompressCells(blob []byte) ([]int32, error) {
	raw, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("report: decompress snapshot: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("report: snapshot blob has %d bytes, not a multiple of 4", len(raw))
	}
	cells := make([]int32, len(raw)/4)
	for i := range cells {
		cells[i] = int32(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return cells, nil
}
