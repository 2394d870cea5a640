package credstore

import (
	"context"
	"fmt"
)

// Keys under which the session persists its credential.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

type Store interface {
	Save(ctx context.Context, key, value string) error
	// Load reports ok == false when nothing is stored under key.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
}

// BatchSaver is implemented by stores that can save several keys at once,
// all or nothing.
type BatchSaver interface {
	SaveAll(ctx context.Context, values map[string]string) error
}

// StoreError is a failed credential store operation.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("credential store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("credential store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
