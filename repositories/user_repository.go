package repositories

import (
	"gabeesh-social/models"
	"gabeesh-social/store"
)

type UserRepository interface {
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
	Create(user *models.User) error
	Update(username string, mutate func(*models.User)) error
	Delete(username string) error
}

type userRepository struct {
	store *store.Store
}

func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var users []models.User
	if err := r.store.Load(CollectionUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.store.Load(CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Create(user *models.User) error {
	return r.store.Update(CollectionUsers, func(tx *store.Tx) error {
		var users []models.User
		if err := tx.Load(&users); err != nil {
			return err
		}
		for _, u := range users {
			if u.Username == user.Username {
				return ErrDuplicate
			}
		}
		users = append(users, *user)
		return tx.Save(users)
	})
}

func (r *userRepository) Update(username string, mutate func(*models.User)) error {
	return r.store.Update(CollectionUsers, func(tx *store.Tx) error {
		var users []models.User
		if err := tx.Load(&users); err != nil {
			return err
		}
		for i := range users {
			if users[i].Username == username {
				mutate(&users[i])
				return tx.Save(users)
			}
		}
		return ErrNotFound
	})
}

func (r *userRepository) Delete(username string) error {
	return r.store.Update(CollectionUsers, func(tx *store.Tx) error {
		var users []models.User
		if err := tx.Load(&users); err != nil {
			return err
		}
		kept := users[:0]
		for _, u := range users {
			if u.Username != username {
				kept = append(kept, u)
			}
		}
		return tx.Save(kept)
	})
}
