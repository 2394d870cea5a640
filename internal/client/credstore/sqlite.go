package credstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/neatdog/neatdog/internal/client/migrations"
	"github.com/neatdog/neatdog/internal/cryptox"
	"github.com/neatdog/neatdog/internal/dbx"
	"github.com/neatdog/neatdog/internal/filex"

	_ "modernc.org/sqlite"
)

const (
	// MemoryPath opens a store that lives only as long as the process.
	MemoryPath = ":memory:"

	saltKey = "store_salt"
)

// SQLiteStore keeps sealed credentials in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

// Open opens (creating if needed) the store at path, migrates it and
// unlocks it with secret.
func Open(ctx context.Context, path, secret string) (*SQLiteStore, error) {
	if path != MemoryPath {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, &StoreError{Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}
	if path == MemoryPath {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, &StoreError{Op: "open", Err: err}
	}

	s, err := NewSQLiteStore(ctx, db, secret)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore unlocks an already migrated database. The salt is created
// on first use and kept in the metadata table.
func NewSQLiteStore(ctx context.Context, db *sql.DB, secret string) (*SQLiteStore, error) {
	var salt []byte
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := metadataRepo(tx)

		v, err := meta.get(ctx, saltKey)
		if err != nil {
			return err
		}
		if v != nil {
			salt = v
			return nil
		}

		if salt, err = cryptox.NewSalt(); err != nil {
			return err
		}
		return meta.set(ctx, saltKey, salt)
	})
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	return &SQLiteStore{db: db, key: cryptox.DeriveKey([]byte(secret), salt)}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key, value string) error {
	if err := s.save(ctx, credentialRepo(s.db), key, value); err != nil {
		return &StoreError{Op: "save", Key: key, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) (string, bool, error) {
	sealed, err := credentialRepo(s.db).get(ctx, key)
	if err != nil {
		return "", false, &StoreError{Op: "load", Key: key, Err: err}
	}
	if sealed == nil {
		return "", false, nil
	}

	plain, err := cryptox.Open(s.key, sealed)
	if err != nil {
		return "", false, &StoreError{Op: "load", Key: key, Err: err}
	}
	return string(plain), true, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := credentialRepo(s.db).delete(ctx, key); err != nil {
		return &StoreError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// SaveAll writes every value in one transaction.
func (s *SQLiteStore) SaveAll(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var failed string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentialRepo(tx)
		for _, k := range keys {
			if err := s.save(ctx, repo, k, values[k]); err != nil {
				failed = k
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &StoreError{Op: "save", Key: failed, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) save(ctx context.Context, repo *kvRepo, key, value string) error {
	sealed, err := cryptox.Seal(s.key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to seal credential[%s]: %w", key, err)
	}
	return repo.set(ctx, key, sealed)
}
