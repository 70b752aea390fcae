package idgen

import (
	"sort"
	"testing"
	"time"

	timeprovider "github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGeneratorMonotonicWithinSameInstant(t *testing.T) {
	clock := timeprovider.NewFixedTimeProvider(time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC))
	gen := NewULIDGenerator(clock)

	ids := make([]string, 1000)
	seen := make(map[string]bool, len(ids))
	for i := range ids {
		ids[i] = gen.NewID()
		require.False(t, seen[ids[i]], "duplicate id %s", ids[i])
		seen[ids[i]] = true
	}

	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids[0], 26)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := NewUUIDv7Generator()

	id, err := uuid.Parse(gen.NewID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, gen.NewID(), gen.NewID())
}

func TestNew(t *testing.T) {
	clock := timeprovider.NewRealTimeProvider()

	g, err := New(SchemeULID, clock)
	require.NoError(t, err)
	assert.IsType(t, &ULIDGenerator{}, g)

	g, err = New(SchemeUUIDv7, clock)
	require.NoError(t, err)
	assert.IsType(t, &UUIDv7Generator{}, g)

	_, err = New("serial", clock)
	assert.Error(t, err)
}
