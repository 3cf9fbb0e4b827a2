//go:build unit

package session_test

import (
	"context"
	"testing"

	"huellitas/internal/infra/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blob struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	key := session.CartKey(uuid.New())

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		var v blob
		err := session.Load(ctx, store, key, &v)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, session.Save(ctx, store, key, blob{Name: "carrito", Count: 3}))

		var v blob
		require.NoError(t, session.Load(ctx, store, key, &v))
		assert.Equal(t, blob{Name: "carrito", Count: 3}, v)
	})

	t.Run("save overwrites whole blob", func(t *testing.T) {
		require.NoError(t, session.Save(ctx, store, key, blob{Name: "nuevo"}))

		var v blob
		require.NoError(t, session.Load(ctx, store, key, &v))
		assert.Equal(t, blob{Name: "nuevo"}, v)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte("{not json")))

		var v blob
		err := session.Load(ctx, store, key, &v)
		require.Error(t, err)
		assert.NotErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))

		var v blob
		assert.ErrorIs(t, session.Load(ctx, store, key, &v), session.ErrNotFound)
	})
}

func TestKeysAreNamespaced(t *testing.T) {
	userID := uuid.New()

	keys := []string{
		session.CartKey(userID),
		session.WizardKey(userID),
		session.BookingsKey(userID),
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.Contains(t, k, userID.String())
		assert.False(t, seen[k])
		seen[k] = true
	}
}
