package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestInitSeedsOnlyOnce(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Init("numbers", []int{1}))
	require.NoError(t, st.Init("numbers", []int{2}))

	var got []int
	require.NoError(t, st.Load("numbers", &got))
	assert.Equal(t, []int{1}, got)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	st := newTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	in := []record{{"a", 1}, {"b", 2}}
	require.NoError(t, st.Save("records", in))

	var out []record
	require.NoError(t, st.Load("records", &out))
	assert.Equal(t, in, out)
}

func TestUpdatePropagatesError(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Init("numbers", []int{1, 2, 3}))

	err := st.Update("numbers", func(tx *Tx) error {
		var nums []int
		if err := tx.Load(&nums); err != nil {
			return err
		}
		nums = append(nums, 4)
		if err := tx.Save(nums); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Error(t, err)
}

// Concurrent read-modify-write cycles must not lose updates: the
// collection lock spans the whole load-then-save sequence.
func TestUpdateSerializesConcurrentWriters(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Init("counter", []int{0}))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Update("counter", func(tx *Tx) error {
				var counter []int
				if err := tx.Load(&counter); err != nil {
					return err
				}
				counter[0]++
				return tx.Save(counter)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var counter []int
	require.NoError(t, st.Load("counter", &counter))
	assert.Equal(t, writers, counter[0])
}
