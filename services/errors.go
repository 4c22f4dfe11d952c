package services

import "errors"

// User-facing error taxonomy. Handlers map these onto HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidVotePower   = errors.New("vote power must be between 1 and 6")
	ErrUserMuted          = errors.New("user is muted")

	ErrMissingPollFields = errors.New("missing required fields")
	ErrTooManyOptions    = errors.New("polls allow at most 5 options")
	ErrPollNotFound      = errors.New("poll not found")
	ErrAlreadyVoted      = errors.New("already voted on this poll")
	ErrPollExpired       = errors.New("poll has expired")
	ErrInvalidOption     = errors.New("invalid poll option")
	ErrInvalidExpiry     = errors.New("invalid expiration date")

	ErrDuplicateWord = errors.New("word already exists in the dictionary")
)
