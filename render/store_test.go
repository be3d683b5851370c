package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/mapping"
)

// TestStore tests the deduplication store states and ordering.
func TestStore(t *testing.T) {
	t.Run("States", func(t *testing.T) {
		s := newStore()
		key := mapping.ResourceKey{Type: "post", ID: 5}

		assert.Equal(t, stateNew, s.getOrMarkPending(key))
		assert.Equal(t, statePending, s.getOrMarkPending(key))
		assert.Nil(t, s.record(key))

		record := &codec.Record{Type: "post", ID: 5}
		s.finalize(key, record)
		assert.Equal(t, stateEmitted, s.getOrMarkPending(key))
		assert.Equal(t, record, s.record(key))
		assert.Equal(t, 1, s.len())
	})

	t.Run("Order", func(t *testing.T) {
		s := newStore()
		keys := []mapping.ResourceKey{
			{Type: "post", ID: 5},
			{Type: "author", ID: 1},
			{Type: "comment", ID: 9},
		}
		// reserve all the slots first, finalize in the reversed order.
		for _, key := range keys {
			require.Equal(t, stateNew, s.getOrMarkPending(key))
		}
		for i := len(keys) - 1; i >= 0; i-- {
			s.finalize(keys[i], &codec.Record{Type: keys[i].Type, ID: keys[i].ID})
		}

		records, err := s.records()
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, record := range records {
			assert.Equal(t, keys[i].Type, record.Type)
			assert.Equal(t, keys[i].ID, record.ID)
		}
	})

	t.Run("PendingRemains", func(t *testing.T) {
		s := newStore()
		require.Equal(t, stateNew, s.getOrMarkPending(mapping.ResourceKey{Type: "post", ID: 5}))

		_, err := s.records()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInternal))
	})

	t.Run("UnknownRecord", func(t *testing.T) {
		s := newStore()
		assert.Nil(t, s.record(mapping.ResourceKey{Type: "post", ID: 5}))
		assert.Equal(t, 0, s.len())
	})

	t.Run("StateNames", func(t *testing.T) {
		assert.Equal(t, "new", stateNew.String())
		assert.Equal(t, "pending", statePending.String())
		assert.Equal(t, "emitted", stateEmitted.String())
	})
}
