package models

type Role string

const (
	RoleMember Role = "Member"
	RoleMod    Role = "Mod"
	RoleLeader Role = "Leader"
)

const (
	MinVotePower = 1
	MaxVotePower = 6
)

// User is a directory record. Password holds the bcrypt hash; it is
// written to the users collection but never returned over HTTP.
type User struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	VotePower  int    `json:"votePower"`
	Muted      bool   `json:"muted"`
	SuperAdmin bool   `json:"superAdmin"`
}

type PublicUser struct {
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	VotePower  int    `json:"votePower"`
	Muted      bool   `json:"muted"`
	SuperAdmin bool   `json:"superAdmin"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		Username:   u.Username,
		Role:       u.Role,
		VotePower:  u.VotePower,
		Muted:      u.Muted,
		SuperAdmin: u.SuperAdmin,
	}
}
