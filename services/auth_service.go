package services

import (
	"errors"
	"time"

	"gabeesh-social/config"
	"gabeesh-social/models"
	"gabeesh-social/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(req models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies credentials and issues a token carrying the login-time
// snapshot of the account. Unknown users and wrong passwords both come
// back as ErrInvalidCredentials so usernames cannot be enumerated.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// The claims are a snapshot: role, vote power and mute status are frozen
// until the user logs in again. Admin changes do not reach an existing
// session.
func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"username":   user.Username,
		"role":       user.Role,
		"votePower":  user.VotePower,
		"muted":      user.Muted,
		"superAdmin": user.SuperAdmin,
		"exp":        now.Add(config.JWTExpiration).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
