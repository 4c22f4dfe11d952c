package services

import (
	"testing"

	"gabeesh-social/models"
	"gabeesh-social/repositories"
	"gabeesh-social/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictionaryFixture(t *testing.T) DictionaryService {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Init(repositories.CollectionDictionary, []models.DictionaryEntry{}))
	return NewDictionaryService(repositories.NewDictionaryRepository(st))
}

func TestAddWordRejectsCaseInsensitiveDuplicate(t *testing.T) {
	svc := newDictionaryFixture(t)

	entry, err := svc.Add(models.AddWordRequest{Word: "Gabeesh", Definition: "understood"}, "adrian")
	require.NoError(t, err)
	assert.Equal(t, "adrian", entry.Author)
	assert.NotEmpty(t, entry.Timestamp)

	_, err = svc.Add(models.AddWordRequest{Word: "gabeesh", Definition: "again"}, "ish")
	assert.ErrorIs(t, err, ErrDuplicateWord)

	entries, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListSortsByWord(t *testing.T) {
	svc := newDictionaryFixture(t)

	for _, w := range []string{"zeta", "Alpha", "mid"} {
		_, err := svc.Add(models.AddWordRequest{Word: w, Definition: "d"}, "adrian")
		require.NoError(t, err)
	}

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Alpha", entries[0].Word)
	assert.Equal(t, "mid", entries[1].Word)
	assert.Equal(t, "zeta", entries[2].Word)
}
