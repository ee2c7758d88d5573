package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/trekvision/crm-server/internal/model"
)

// clientCols is the column list every SELECT uses, in scan order.
const clientCols = `id, full_name, phone, country, mac_address, entry_date,
	subscription_days, is_paid, is_archived, created_at, updated_at`

// ClientRepo encapsulates all database access for client records.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo constructs a ClientRepo around the given connection pool.
func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func scanClient(row interface{ Scan(...any) error }) (model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.Country, &c.MACAddress,
		&c.EntryDate, &c.SubscriptionDays, &c.IsPaid, &c.IsArchived,
		&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *ClientRepo) list(ctx context.Context, archived bool) ([]model.Client, error) {
	q := `SELECT ` + clientCols + ` FROM clients WHERE is_archived = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, archived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive returns all non-archived clients, newest first.
func (r *ClientRepo) ListActive(ctx context.Context) ([]model.Client, error) {
	return r.list(ctx, false)
}

// ListArchived returns the archived clients, newest first.
func (r *ClientRepo) ListArchived(ctx context.Context) ([]model.Client, error) {
	return r.list(ctx, true)
}

// GetByID fetches one client regardless of archive state. Returns
// ErrClientNotFound when the id has no row.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (model.Client, error) {
	q := `SELECT ` + clientCols + ` FROM clients WHERE id = ? LIMIT 1`
	c, err := scanClient(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Client{}, ErrClientNotFound
	}
	return c, err
}

// Create inserts a new client with a server-assigned UUID and returns the
// fully populated row including database timestamps.
func (r *ClientRepo) Create(ctx context.Context, f model.ClientFields) (model.Client, error) {
	id := uuid.NewString()
	const q = `INSERT INTO clients
		(id, full_name, phone, country, mac_address, entry_date, subscription_days, is_paid)
		VALUES (?,?,?,?,?,?,?,?)`
	if _, err := r.db.ExecContext(ctx, q, id, f.FullName, f.Phone, f.Country,
		f.MACAddress, f.EntryDate, f.SubscriptionDays, f.IsPaid); err != nil {
		return model.Client{}, err
	}
	// Follow-up SELECT to pick up the DB-assigned timestamps.
	return r.GetByID(ctx, id)
}

// Update replaces every mutable field of the client. The id and creation
// timestamp are immutable. Returns ErrClientNotFound when the id is absent.
func (r *ClientRepo) Update(ctx context.Context, id string, f model.ClientFields) (model.Client, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Client{}, err
	}
	const q = `UPDATE clients
		SET full_name = ?, phone = ?, country = ?, mac_address = ?, entry_date = ?,
		    subscription_days = ?, is_paid = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, f.FullName, f.Phone, f.Country,
		f.MACAddress, f.EntryDate, f.SubscriptionDays, f.IsPaid, id); err != nil {
		return model.Client{}, err
	}
	return r.GetByID(ctx, id)
}

// Archive soft-deletes a client: the row is kept but flagged so it leaves
// the active list. Archiving an already-archived client is a no-op that
// still returns the row. Returns ErrClientNotFound when the id is absent.
func (r *ClientRepo) Archive(ctx context.Context, id string) (model.Client, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Client{}, err
	}
	const q = `UPDATE clients SET is_archived = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return model.Client{}, err
	}
	return r.GetByID(ctx, id)
}

// BulkImport inserts the given rows inside one transaction and returns how
// many were stored. INSERT IGNORE skips rows colliding on a uniqueness
// constraint instead of failing the whole batch; with server-assigned UUIDs
// no collision is expected in practice.
func (r *ClientRepo) BulkImport(ctx context.Context, rows []model.ClientFields) (inserted int, err error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	const q = `INSERT IGNORE INTO clients
		(id, full_name, phone, country, mac_address, entry_date, subscription_days, is_paid)
		VALUES (?,?,?,?,?,?,?,?)`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, f := range rows {
		var res sql.Result
		res, err = stmt.ExecContext(ctx, uuid.NewString(), f.FullName, f.Phone,
			f.Country, f.MACAddress, f.EntryDate, f.SubscriptionDays, f.IsPaid)
		if err != nil {
			return 0, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, err
}
