package services

import (
	"strings"
	"time"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"
	"github.com/Sanjanabonagiri16/Tabletrack/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials and issues JWTs. Accounts are seeded at
// startup; there is no self-registration.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks the password and returns a signed token plus the profile.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}
