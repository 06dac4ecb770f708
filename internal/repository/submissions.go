package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubmissionRecord is one completed discovery flow, kept locally as an
// audit trail regardless of whether the remote submission succeeded.
type SubmissionRecord struct {
	ID           string
	Reference    string
	Source       string // remote | fallback
	Company      string
	Email        string
	Industry     string
	PackageSize  int
	TotalSetup   float64
	MonthlyFinal float64
	Billing      string
	CreatedAt    time.Time
}

// SQLiteSubmissionRepo persists submission records.
type SQLiteSubmissionRepo struct {
	db *sql.DB
}

func NewSQLiteSubmissionRepo(db *sql.DB) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: db}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, rec *SubmissionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO submissions
		(id, reference, source, company, email, industry, package_size, total_setup, monthly_final, billing, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Reference,
		rec.Source,
		rec.Company,
		rec.Email,
		rec.Industry,
		rec.PackageSize,
		rec.TotalSetup,
		rec.MonthlyFinal,
		rec.Billing,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) ListRecent(ctx context.Context, limit int) ([]*SubmissionRecord, error) {
	query := `SELECT id, reference, source, company, email, industry, package_size, total_setup, monthly_final, billing, created_at
		FROM submissions ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []*SubmissionRecord
	for rows.Next() {
		var rec SubmissionRecord
		var createdAt string
		err := rows.Scan(
			&rec.ID, &rec.Reference, &rec.Source, &rec.Company, &rec.Email, &rec.Industry,
			&rec.PackageSize, &rec.TotalSetup, &rec.MonthlyFinal, &rec.Billing, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return out, nil
}
