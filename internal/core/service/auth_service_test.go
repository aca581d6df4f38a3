package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/localekit/localization-system/internal/core/domain"
)

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("user id must be assigned")
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	for _, args := range [][3]string{
		{"", "ana@example.com", "pw"},
		{"Ana", "", "pw"},
		{"Ana", "ana@example.com", ""},
	} {
		if _, err := svc.Register(context.Background(), args[0], args[1], args[2]); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Register(%q, %q, %q): expected ErrInvalidCredentials, got %v", args[0], args[1], args[2], err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "pw"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Ana Again", "ana@example.com", "pw"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_IssuesToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	registered, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter22")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "ana@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("user id mismatch: %s vs %s", user.ID, registered.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims["sub"] != registered.ID {
		t.Errorf("sub claim: want %s, got %v", registered.ID, claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter22"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
