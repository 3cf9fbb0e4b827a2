//go:build unit

package pet_test

import (
	"testing"
	"time"

	"huellitas/internal/domain/pet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	owner := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		p, err := pet.New(owner, "  Rocky ", "Perro", "Beagle", 3, 12.5, "alérgico al polen", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, owner, p.OwnerID)
		assert.Equal(t, "Rocky", p.Name)
		assert.Equal(t, now, p.CreatedAt)
		assert.Equal(t, now, p.UpdatedAt)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := pet.New(owner, "   ", "Perro", "", 0, 0, "", now)
		assert.ErrorIs(t, err, pet.ErrNameRequired)
	})

	t.Run("species is required", func(t *testing.T) {
		_, err := pet.New(owner, "Rocky", "", "", 0, 0, "", now)
		assert.ErrorIs(t, err, pet.ErrSpeciesRequired)
	})
}

func TestUpdate(t *testing.T) {
	owner := uuid.New()
	p, err := pet.New(owner, "Rocky", "Perro", "Beagle", 3, 12.5, "", now)
	require.NoError(t, err)

	later := now.Add(48 * time.Hour)

	t.Run("mutates fields keeping identity", func(t *testing.T) {
		require.NoError(t, p.Update("Rocco", "Perro", "Beagle", 4, 13.1, "dieta especial", later))

		assert.Equal(t, "Rocco", p.Name)
		assert.Equal(t, 4, p.Age)
		assert.Equal(t, owner, p.OwnerID)
		assert.Equal(t, now, p.CreatedAt)
		assert.Equal(t, later, p.UpdatedAt)
	})

	t.Run("invalid update leaves the pet untouched", func(t *testing.T) {
		err := p.Update("", "Perro", "", 0, 0, "", later.Add(time.Hour))
		assert.ErrorIs(t, err, pet.ErrNameRequired)
		assert.Equal(t, "Rocco", p.Name)
		assert.Equal(t, later, p.UpdatedAt)
	})
}

func TestSnapshot(t *testing.T) {
	p, err := pet.New(uuid.New(), "Misu", "Gato", "Siamés", 2, 4.2, "", now)
	require.NoError(t, err)

	snap := p.Snapshot()
	assert.Equal(t, pet.Snapshot{Name: "Misu", Species: "Gato", Breed: "Siamés", Age: 2}, snap)
}
