package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ppiankov/crosscheck/internal/model"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS claims (
	fingerprint   TEXT PRIMARY KEY,
	text          TEXT NOT NULL,
	verdict       TEXT NOT NULL,
	confidence    REAL NOT NULL,
	evidence      TEXT NOT NULL,
	first_checked TEXT NOT NULL,
	last_checked  TEXT NOT NULL,
	check_count   INTEGER NOT NULL,
	status        TEXT NOT NULL,
	pending_since TEXT
);
CREATE INDEX IF NOT EXISTS idx_claims_pending ON claims(status, pending_since);
`

// SQLiteStore is the production Store, backed by a single SQLite file.
// The pending queue is derived from the claims table (pending_since),
// so it is always rebuildable from the claims alone. A mutex serializes
// the read-modify-write upsert on top of the transaction.
type SQLiteStore struct {
	db                  *sql.DB
	mu                  sync.Mutex
	resolutionThreshold float64
}

// NewSQLiteStore opens (and if needed creates) the claims database at path
func NewSQLiteStore(path string, resolutionThreshold float64) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open claims db: %w", err)
	}
	// Single writer: SQLite serializes writes anyway, and the upsert mutex
	// assumes one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db, resolutionThreshold: resolutionThreshold}, nil
}

// Upsert implements Store
func (s *SQLiteStore) Upsert(ctx context.Context, claimText string, verdict model.Verdict, confidence float64, evidence model.EvidenceBundle) (UpsertResult, error) {
	fp := Fingerprint(claimText)
	now := nowFunc()

	evidenceJSON, err := json.Marshal(evidence)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("marshal evidence: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		firstChecked = now
		checkCount   = 1
		pendingSince sql.NullString
	)
	row := tx.QueryRowContext(ctx,
		`SELECT first_checked, check_count, pending_since FROM claims WHERE fingerprint = ?`, fp)
	var existingFirst string
	var existingCount int
	switch err := row.Scan(&existingFirst, &existingCount, &pendingSince); {
	case err == nil:
		if t, perr := time.Parse(time.RFC3339Nano, existingFirst); perr == nil {
			firstChecked = t
		}
		checkCount = existingCount + 1
	case errors.Is(err, sql.ErrNoRows):
		// First check of this claim
	default:
		return UpsertResult{}, fmt.Errorf("read existing claim: %w", err)
	}

	status := model.ComputeStatus(verdict, confidence, s.resolutionThreshold)
	switch status {
	case model.StatusPending:
		if !pendingSince.Valid {
			pendingSince = sql.NullString{String: now.Format(time.RFC3339Nano), Valid: true}
		}
	default:
		pendingSince = sql.NullString{}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO claims (fingerprint, text, verdict, confidence, evidence,
			first_checked, last_checked, check_count, status, pending_since)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			text = excluded.text,
			verdict = excluded.verdict,
			confidence = excluded.confidence,
			evidence = excluded.evidence,
			last_checked = excluded.last_checked,
			check_count = excluded.check_count,
			status = excluded.status,
			pending_since = excluded.pending_since`,
		fp, claimText, string(verdict), confidence, string(evidenceJSON),
		firstChecked.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
		checkCount, string(status), pendingSince)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("write claim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return UpsertResult{}, fmt.Errorf("commit upsert: %w", err)
	}

	return UpsertResult{ClaimID: fp, Status: status}, nil
}

// Get implements Store
func (s *SQLiteStore) Get(ctx context.Context, claimText string) (*model.Claim, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT fingerprint, text, verdict, confidence, evidence,
			first_checked, last_checked, check_count, status
		FROM claims WHERE fingerprint = ?`, Fingerprint(claimText))

	claim, err := scanClaim(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// ListPending implements Store
func (s *SQLiteStore) ListPending(ctx context.Context) ([]model.Claim, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT fingerprint, text, verdict, confidence, evidence,
			first_checked, last_checked, check_count, status
		FROM claims WHERE status = ? ORDER BY pending_since`, string(model.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	defer rows.Close()

	var out []model.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *claim)
	}
	return out, rows.Err()
}

// Close implements Store
func (s *SQLiteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClaim(row rowScanner) (*model.Claim, error) {
	var (
		claim        model.Claim
		verdict      string
		status       string
		evidenceJSON string
		firstChecked string
		lastChecked  string
	)
	err := row.Scan(&claim.Fingerprint, &claim.Text, &verdict, &claim.Confidence,
		&evidenceJSON, &firstChecked, &lastChecked, &claim.CheckCount, &status)
	if err != nil {
		return nil, err
	}

	claim.Verdict = model.Verdict(verdict)
	claim.Status = model.ClaimStatus(status)
	if err := json.Unmarshal([]byte(evidenceJSON), &claim.Evidence); err != nil {
		return nil, fmt.Errorf("decode evidence bundle: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, firstChecked); err == nil {
		claim.FirstChecked = t
	}
	if t, err := time.Parse(time.RFC3339Nano, lastChecked); err == nil {
		claim.LastChecked = t
	}
	return &claim, nil
}
