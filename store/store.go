// Package store archives ingested sample batches in an embedded SQLite
// database so a batch can be re-loaded and re-reported without the original
// export files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/blaise-mibeck/XRF-Data-Manager/engine"
)

// Store is a SQLite-backed batch archive. Safe for use from one process;
// the underlying driver serializes access.
type Store struct {
	db *sql.DB
}

// Batch is one archived ingestion run.
type Batch struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Instrument string    `json:"instrument,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Samples    int       `json:"samples"`
}

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id          TEXT PRIMARY KEY,
	label       TEXT NOT NULL,
	instrument  TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	batch_id     TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	sample_id    TEXT NOT NULL,
	notebook_id  TEXT NOT NULL DEFAULT '',
	client_id    TEXT NOT NULL DEFAULT '',
	report_label TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (batch_id, position)
);
CREATE TABLE IF NOT EXISTS measurements (
	batch_id      TEXT NOT NULL,
	position      INTEGER NOT NULL,
	seq           INTEGER NOT NULL,
	element       TEXT NOT NULL,
	concentration REAL NOT NULL,
	unit          TEXT NOT NULL,
	scan          TEXT NOT NULL DEFAULT '',
	signal        REAL NOT NULL DEFAULT 0,
	PRIMARY KEY (batch_id, position, seq),
	FOREIGN KEY (batch_id, position) REFERENCES samples(batch_id, position) ON DELETE CASCADE
);
`

// Open opens (and if needed initializes) the archive at path. Use ":memory:"
// for an ephemeral archive.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "xrf-archive.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serializes writers anyway, and a second pooled connection to
	// ":memory:" would see a different database entirely.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBatch archives a batch of samples under a fresh UUID and returns the
// batch record. The write is transactional: either the whole batch lands or
// nothing does.
func (s *Store) SaveBatch(ctx context.Context, label, instrument string, samples []engine.Sample) (Batch, error) {
	batch := Batch{
		ID:         uuid.NewString(),
		Label:      label,
		Instrument: instrument,
		CreatedAt:  time.Now().UTC(),
		Samples:    len(samples),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Batch{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO batches (id, label, instrument, created_at) VALUES (?, ?, ?, ?)`,
		batch.ID, batch.Label, batch.Instrument, batch.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return Batch{}, fmt.Errorf("insert batch: %w", err)
	}

	for pos, sample := range samples {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO samples (batch_id, position, sample_id, notebook_id, client_id, report_label)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			batch.ID, pos, sample.SampleID, sample.NotebookID, sample.ClientID, sample.ReportLabel,
		); err != nil {
			return Batch{}, fmt.Errorf("insert sample %s: %w", sample.SampleID, err)
		}

		for seq, m := range sample.Measurements {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO measurements (batch_id, position, seq, element, concentration, unit, scan, signal)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				batch.ID, pos, seq, m.Element, m.Concentration, string(m.Unit), m.Scan, m.Signal,
			); err != nil {
				return Batch{}, fmt.Errorf("insert measurement %s/%s: %w", sample.SampleID, m.Element, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Batch{}, fmt.Errorf("commit: %w", err)
	}
	return batch, nil
}

// LoadBatch restores a batch's samples in their original order.
func (s *Store) LoadBatch(ctx context.Context, batchID string) ([]engine.Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, sample_id, notebook_id, client_id, report_label
		 FROM samples WHERE batch_id = ? ORDER BY position`, batchID)
	if err != nil {
		return nil, fmt.Errorf("select samples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var samples []engine.Sample
	positions := make(map[int]int) // position → samples index
	for rows.Next() {
		var pos int
		var sample engine.Sample
		if err := rows.Scan(&pos, &sample.SampleID, &sample.NotebookID, &sample.ClientID, &sample.ReportLabel); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		positions[pos] = len(samples)
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("batch %s not found or empty", batchID)
	}

	mrows, err := s.db.QueryContext(ctx,
		`SELECT position, element, concentration, unit, scan, signal
		 FROM measurements WHERE batch_id = ? ORDER BY position, seq`, batchID)
	if err != nil {
		return nil, fmt.Errorf("select measurements: %w", err)
	}
	defer func() { _ = mrows.Close() }()

	for mrows.Next() {
		var pos int
		var m engine.Measurement
		var unit string
		if err := mrows.Scan(&pos, &m.Element, &m.Concentration, &unit, &m.Scan, &m.Signal); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.Unit = engine.Unit(unit)
		if i, ok := positions[pos]; ok {
			samples[i].Measurements = append(samples[i].Measurements, m)
		}
	}
	if err := mrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measurements: %w", err)
	}

	return samples, nil
}

// ListBatches returns archived batches, newest first.
func (s *Store) ListBatches(ctx context.Context) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT b.id, b.label, b.instrument, b.created_at, COUNT(sa.sample_id)
		 FROM batches b LEFT JOIN samples sa ON sa.batch_id = b.id
		 GROUP BY b.id ORDER BY b.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("select batches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var batches []Batch
	for rows.Next() {
		var b Batch
		var created string
		if err := rows.Scan(&b.ID, &b.Label, &b.Instrument, &created, &b.Samples); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			b.CreatedAt = t
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}
