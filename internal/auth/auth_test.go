package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alphabot-ai/bloglist/internal/store"
	"github.com/alphabot-ai/bloglist/internal/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.Open(fmt.Sprintf("file:auth_%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRegisterAndLogin(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st, "test-secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "mluukkai", "Matti Luukkainen", "salainen")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user id")
	}
	if user.PasswordHash == "salainen" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password")
	}

	token, loggedIn, err := svc.Login(ctx, "mluukkai", "salainen")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.Token == "" || loggedIn.ID != user.ID {
		t.Fatalf("unexpected login result: %+v %+v", token, loggedIn)
	}

	verified, err := svc.Authenticate(ctx, token.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if verified.UserID != user.ID || verified.Username != "mluukkai" {
		t.Fatalf("unexpected verified: %+v", verified)
	}
}

func TestRegisterValidation(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ab", "", "secret"); !errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
	if _, err := svc.Register(ctx, "valid", "", "pw"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err := svc.Register(ctx, "valid", "", strings.Repeat("x", 73)); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for 73 bytes, got %v", err)
	}
	if _, err := svc.Register(ctx, "longest", "", strings.Repeat("x", 72)); err != nil {
		t.Fatalf("72-byte password should register: %v", err)
	}
	if _, err := svc.Register(ctx, "root", "", "sekret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "root", "", "sekret"); !errors.Is(err, store.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "root", "", "sekret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "root", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody", "sekret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestTokenExpiration(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st, "test-secret", -1*time.Second)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "root", "", "sekret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login(ctx, "root", "sekret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token.Token); err == nil {
		t.Fatalf("expected token expiration error")
	}
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	issuer := NewService(st, "secret-one", time.Hour)
	verifier := NewService(st, "secret-two", time.Hour)

	if _, err := issuer.Register(ctx, "root", "", "sekret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := issuer.Login(ctx, "root", "sekret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := verifier.Authenticate(ctx, token.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := issuer.Authenticate(ctx, token.Token[:len(token.Token)-4]+"AAAA"); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}
