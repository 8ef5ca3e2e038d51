package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"

	"golang.org/x/crypto/bcrypt"
)

func newAuthEnv(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	err = db.Create(&entity.User{Username: "alice", Password: string(hash), Role: entity.RoleWaiter}).Error
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid credentials", "alice", "hunter2", nil},
		{"username is case-insensitive", "  Alice ", "hunter2", nil},
		{"wrong password", "alice", "wrong", ErrInvalidCredentials},
		{"unknown user", "bob", "hunter2", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthEnv(t)

			token, user, err := svc.Login(tt.username, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() unexpected error = %v", err)
			}
			if token == "" {
				t.Error("Login() returned empty token")
			}
			if user.Role != entity.RoleWaiter {
				t.Errorf("Login() role = %q, want %q", user.Role, entity.RoleWaiter)
			}
		})
	}
}

func TestAuthService_GetProfile_Unknown(t *testing.T) {
	svc := newAuthEnv(t)
	if _, err := svc.GetProfile(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetProfile(unknown) error = %v, want %v", err, ErrNotFound)
	}
}
