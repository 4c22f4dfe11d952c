package repositories

import (
	"gabeesh-social/models"
	"gabeesh-social/store"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username   string
	password   string
	role       models.Role
	votePower  int
	superAdmin bool
}

var seedUsers = []seedUser{
	{"adrian", "adrian123", models.RoleLeader, 6, true},
	{"ish", "ishpass", models.RoleMod, 4, true},
	{"member1", "temp1", models.RoleMember, 1, false},
}

// Seed creates any missing collection with its initial contents. The
// default accounts get bcrypt hashes; existing files are left alone.
func Seed(st *store.Store) error {
	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			Username:   su.username,
			Password:   string(hash),
			Role:       su.role,
			VotePower:  su.votePower,
			SuperAdmin: su.superAdmin,
		})
	}

	if err := st.Init(CollectionUsers, users); err != nil {
		return err
	}
	if err := st.Init(CollectionAnnouncements, []models.Announcement{}); err != nil {
		return err
	}
	if err := st.Init(CollectionPolls, []models.Poll{}); err != nil {
		return err
	}
	return st.Init(CollectionDictionary, []models.DictionaryEntry{})
}
