package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/neatdog/neatdog/internal/dbx"
)

// kvRepo is a blob key/value table. Both tables the store uses share the
// (key TEXT PRIMARY KEY, value BLOB) shape.
type kvRepo struct {
	db    dbx.DBTX
	table string
	label string
}

func metadataRepo(db dbx.DBTX) *kvRepo {
	return &kvRepo{db: db, table: "metadata", label: "metadata"}
}

func credentialRepo(db dbx.DBTX) *kvRepo {
	return &kvRepo{db: db, table: "credentials", label: "credential"}
}

// get returns (nil, nil) when the key is absent.
func (r *kvRepo) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM `+r.table+` WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s[%s]: %w", r.label, key, err)
	}
	return value, nil
}

func (r *kvRepo) set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+r.table+` (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s[%s]: %w", r.label, key, err)
	}
	return nil
}

func (r *kvRepo) delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s[%s]: %w", r.label, key, err)
	}
	return nil
}
