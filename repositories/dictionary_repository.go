package repositories

import (
	"sort"
	"strings"

	"gabeesh-social/models"
	"gabeesh-social/store"
)

type DictionaryRepository interface {
	GetAll() ([]models.DictionaryEntry, error)
	Create(entry *models.DictionaryEntry) error
}

type dictionaryRepository struct {
	store *store.Store
}

func NewDictionaryRepository(st *store.Store) DictionaryRepository {
	return &dictionaryRepository{store: st}
}

// GetAll returns entries sorted by word, case-insensitively.
func (r *dictionaryRepository) GetAll() ([]models.DictionaryEntry, error) {
	var entries []models.DictionaryEntry
	if err := r.store.Load(CollectionDictionary, &entries); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Word) < strings.ToLower(entries[j].Word)
	})
	return entries, nil
}

// Create rejects a word that already exists under case folding.
func (r *dictionaryRepository) Create(entry *models.DictionaryEntry) error {
	return r.store.Update(CollectionDictionary, func(tx *store.Tx) error {
		var entries []models.DictionaryEntry
		if err := tx.Load(&entries); err != nil {
			return err
		}
		for _, e := range entries {
			if strings.EqualFold(e.Word, entry.Word) {
				return ErrDuplicate
			}
		}
		entries = append(entries, *entry)
		return tx.Save(entries)
	})
}
