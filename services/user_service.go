package services

import (
	"errors"

	"gabeesh-social/models"
	"gabeesh-social/repositories"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	CreateMember(req models.CreateMemberRequest) (*models.User, error)
	List() ([]models.User, error)
	AssignRole(username string, role models.Role) error
	AssignVotePower(username string, power int) error
	SetMuted(username string, muted bool) error
	ResetPassword(username, newPassword string) error
	Delete(username string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates an account with the chosen role and vote power 1.
func (s *userService) Register(req models.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleMember
	}
	return s.create(req.Username, req.Password, role, models.MinVotePower)
}

// CreateMember is the dashboard inline create: always a Member, and an
// out-of-range vote power falls back to 1 instead of failing.
func (s *userService) CreateMember(req models.CreateMemberRequest) (*models.User, error) {
	power := req.VotePower
	if power < models.MinVotePower || power > models.MaxVotePower {
		power = models.MinVotePower
	}
	return s.create(req.Username, req.Password, models.RoleMember, power)
}

func (s *userService) create(username, password string, role models.Role, power int) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Password:  string(hash),
		Role:      role,
		VotePower: power,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// AssignRole leaves super-admin accounts untouched. The attempt is
// silently ignored, not rejected.
func (s *userService) AssignRole(username string, role models.Role) error {
	return s.mapNotFound(s.userRepo.Update(username, func(u *models.User) {
		if u.SuperAdmin {
			return
		}
		u.Role = role
	}))
}

func (s *userService) AssignVotePower(username string, power int) error {
	if power < models.MinVotePower || power > models.MaxVotePower {
		return ErrInvalidVotePower
	}
	return s.mapNotFound(s.userRepo.Update(username, func(u *models.User) {
		u.VotePower = power
	}))
}

func (s *userService) SetMuted(username string, muted bool) error {
	return s.mapNotFound(s.userRepo.Update(username, func(u *models.User) {
		u.Muted = muted
	}))
}

func (s *userService) ResetPassword(username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.mapNotFound(s.userRepo.Update(username, func(u *models.User) {
		u.Password = string(hash)
	}))
}

func (s *userService) Delete(username string) error {
	return s.userRepo.Delete(username)
}

func (s *userService) mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
