package repositories

import (
	"sort"

	"gabeesh-social/models"
	"gabeesh-social/store"

	"github.com/google/uuid"
)

type AnnouncementRepository interface {
	GetAll() ([]models.Announcement, error)
	Create(a *models.Announcement) error
	Delete(id string) error
}

type announcementRepository struct {
	store *store.Store
}

func NewAnnouncementRepository(st *store.Store) AnnouncementRepository {
	return &announcementRepository{store: st}
}

// GetAll returns announcements newest first.
func (r *announcementRepository) GetAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := r.store.Load(CollectionAnnouncements, &announcements); err != nil {
		return nil, err
	}
	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].Timestamp > announcements[j].Timestamp
	})
	return announcements, nil
}

func (r *announcementRepository) Create(a *models.Announcement) error {
	a.ID = uuid.NewString()
	return r.store.Update(CollectionAnnouncements, func(tx *store.Tx) error {
		var announcements []models.Announcement
		if err := tx.Load(&announcements); err != nil {
			return err
		}
		announcements = append(announcements, *a)
		return tx.Save(announcements)
	})
}

func (r *announcementRepository) Delete(id string) error {
	return r.store.Update(CollectionAnnouncements, func(tx *store.Tx) error {
		var announcements []models.Announcement
		if err := tx.Load(&announcements); err != nil {
			return err
		}
		kept := announcements[:0]
		for _, a := range announcements {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		return tx.Save(kept)
	})
}
