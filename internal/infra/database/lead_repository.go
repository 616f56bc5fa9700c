package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

//go:embed schema.sql
var schema string

const (
	uniqueViolation = "23505"
	// seedLockKey serialises fixture seeding across processes.
	seedLockKey = 7_310_402
)

// Migrate creates the mandates table when it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate mandates: %w", err)
	}
	return nil
}

type LeadRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db, Now: time.Now}
}

const leadColumns = `id, first_name, last_name, email, phone, investment_ceiling, net_worth_band,
	property_interest, residency_status, message, status, created_at, estimated_value, notes`

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	if err := r.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM mandates ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list mandates: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID,
			&l.FirstName,
			&l.LastName,
			&l.Email,
			&l.Phone,
			&l.InvestmentCeiling,
			&l.NetWorthBand,
			&l.PropertyInterest,
			&l.ResidencyStatus,
			&l.Message,
			&l.Status,
			&l.Timestamp,
			&l.EstimatedValue,
			&l.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan mandate: %w", err)
		}
		l.Timestamp = l.Timestamp.UTC()
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Append(ctx context.Context, lead *entity.Lead) error {
	if err := r.ensureSeeded(ctx); err != nil {
		return err
	}

	if err := insertLead(ctx, r.DB, lead, false); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", entity.ErrDuplicateLead, lead.ID)
		}
		return fmt.Errorf("insert mandate: %w", err)
	}
	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, from, to entity.MandateLevel) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE mandates SET status = $1 WHERE id = $2 AND status = $3`,
		string(to), id, string(from),
	)
	if err != nil {
		return fmt.Errorf("update mandate status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update mandate status: %w", err)
	}
	if n > 0 {
		return nil
	}

	var current string
	err = r.DB.QueryRowContext(ctx, `SELECT status FROM mandates WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", entity.ErrLeadNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("update mandate status: %w", err)
	}
	return fmt.Errorf("%w: %s is %s, not %s", entity.ErrTransitionNotAllowed, id, current, from)
}

// ensureSeeded inserts the fixture set in one transaction when the table
// has never held a row.
func (r *LeadRepository) ensureSeeded(ctx context.Context) error {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM mandates)`).Scan(&exists); err != nil {
		return fmt.Errorf("check mandates: %w", err)
	}
	if exists {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed mandates: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return fmt.Errorf("seed mandates: %w", err)
	}
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM mandates)`).Scan(&exists); err != nil {
		return fmt.Errorf("seed mandates: %w", err)
	}
	if exists {
		return nil
	}

	fixtures := entity.FixtureLeads(r.Now())
	for i := range fixtures {
		if err := insertLead(ctx, tx, &fixtures[i], true); err != nil {
			return fmt.Errorf("seed mandate %s: %w", fixtures[i].ID, err)
		}
	}

	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertLead(ctx context.Context, db execer, l *entity.Lead, ignoreConflict bool) error {
	query := `
		INSERT INTO mandates (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if ignoreConflict {
		query += ` ON CONFLICT (id) DO NOTHING`
	}

	_, err := db.ExecContext(ctx, query,
		l.ID,
		l.FirstName,
		l.LastName,
		l.Email,
		l.Phone,
		l.InvestmentCeiling,
		string(l.NetWorthBand),
		l.PropertyInterest,
		string(l.ResidencyStatus),
		l.Message,
		string(l.Status),
		l.Timestamp,
		l.EstimatedValue,
		l.Notes,
	)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
