package repositories

import (
	"gabeesh-social/models"
	"gabeesh-social/store"
)

type PollRepository interface {
	GetAll() ([]models.Poll, error)
	GetByID(id int) (*models.Poll, error)
	Create(p *models.Poll) error
	Update(id int, mutate func(*models.Poll) error) error
	Delete(id int) error
}

type pollRepository struct {
	store *store.Store
}

func NewPollRepository(st *store.Store) PollRepository {
	return &pollRepository{store: st}
}

func (r *pollRepository) GetAll() ([]models.Poll, error) {
	var polls []models.Poll
	if err := r.store.Load(CollectionPolls, &polls); err != nil {
		return nil, err
	}
	return polls, nil
}

func (r *pollRepository) GetByID(id int) (*models.Poll, error) {
	var polls []models.Poll
	if err := r.store.Load(CollectionPolls, &polls); err != nil {
		return nil, err
	}
	for i := range polls {
		if polls[i].ID == id {
			return &polls[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next id (max existing + 1, or 1 for an empty
// collection) and appends. The id read and the append happen under the
// same collection lock, so concurrent creators cannot collide.
func (r *pollRepository) Create(p *models.Poll) error {
	return r.store.Update(CollectionPolls, func(tx *store.Tx) error {
		var polls []models.Poll
		if err := tx.Load(&polls); err != nil {
			return err
		}
		maxID := 0
		for _, existing := range polls {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		p.ID = maxID + 1
		polls = append(polls, *p)
		return tx.Save(polls)
	})
}

// Update runs mutate on the matching poll under the collection lock. A
// mutate error aborts the update and nothing is written.
func (r *pollRepository) Update(id int, mutate func(*models.Poll) error) error {
	return r.store.Update(CollectionPolls, func(tx *store.Tx) error {
		var polls []models.Poll
		if err := tx.Load(&polls); err != nil {
			return err
		}
		for i := range polls {
			if polls[i].ID == id {
				if err := mutate(&polls[i]); err != nil {
					return err
				}
				return tx.Save(polls)
			}
		}
		return ErrNotFound
	})
}

func (r *pollRepository) Delete(id int) error {
	return r.store.Update(CollectionPolls, func(tx *store.Tx) error {
		var polls []models.Poll
		if err := tx.Load(&polls); err != nil {
			return err
		}
		kept := polls[:0]
		for _, p := range polls {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return tx.Save(kept)
	})
}
