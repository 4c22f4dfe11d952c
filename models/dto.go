package models

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"omitempty,oneof=Member Mod Leader"`
}

// CreateMemberRequest is the super-admin inline create on the dashboard.
// An out-of-range vote power falls back to 1 rather than failing.
type CreateMemberRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	VotePower int    `json:"vote_power"`
}

type AssignRoleRequest struct {
	Username string `json:"username" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=Member Mod Leader"`
}

type AssignVoteRequest struct {
	Username string `json:"username" binding:"required"`
	Power    int    `json:"power" binding:"required"`
}

type UsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type DeleteAnnouncementRequest struct {
	ID string `json:"id" binding:"required"`
}

type CreatePollRequest struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	ExpiresAt string   `json:"expires_at"`
}

type VoteRequest struct {
	PollID int  `json:"poll_id" binding:"required"`
	Choice *int `json:"choice" binding:"required"`
}

type DeletePollRequest struct {
	ID int `json:"id" binding:"required"`
}

type EditPollRequest struct {
	ExpiresAt string `json:"expires_at" binding:"required"`
}

type AddWordRequest struct {
	Word       string `json:"word" binding:"required"`
	Definition string `json:"definition" binding:"required"`
}
