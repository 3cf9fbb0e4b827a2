// Package session holds per-user state blobs: the shopping cart, the
// booking wizard and the user's booking collection. Blobs are stored
// whole and overwritten whole; the last writer wins.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session blob not found")

// Store is a per-key blob store. Keys are built with the *Key helpers
// so every namespace shares one keyspace layout.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

const keyPrefix = "huellitas:"

func CartKey(userID uuid.UUID) string     { return fmt.Sprintf("%scart:%s", keyPrefix, userID) }
func WizardKey(userID uuid.UUID) string   { return fmt.Sprintf("%swizard:%s", keyPrefix, userID) }
func BookingsKey(userID uuid.UUID) string { return fmt.Sprintf("%sbookings:%s", keyPrefix, userID) }

// Load unmarshals the blob at key into v. Returns ErrNotFound untouched
// so callers can fall back to a zero value.
func Load(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt session blob at %s: %w", key, err)
	}
	return nil
}

// Save marshals v and overwrites the blob at key.
func Save(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal session blob for %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
