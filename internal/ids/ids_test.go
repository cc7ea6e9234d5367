package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsDistinctUUIDs(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		_, err := uuid.Parse(id)
		require.NoError(t, err, "id %q should be a valid UUID", id)

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("b")
	assert.Equal(t, "b-1", gen())
	assert.Equal(t, "b-2", gen())
	assert.Equal(t, "b-3", gen())

	// Independent generators keep independent counters
	other := Sequence("c")
	assert.Equal(t, "c-1", other())
}
