package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"
	"github.com/alphabot-ai/bloglist/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minCredentialLength = 3
	// bcrypt rejects longer input with ErrPasswordTooLong.
	maxPasswordLength = 72
)

var (
	ErrInvalidUsername    = fmt.Errorf("username must be at least %d characters", minCredentialLength)
	ErrInvalidPassword    = fmt.Errorf("password must be %d to %d bytes long", minCredentialLength, maxPasswordLength)
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service struct {
	store    store.UserStore
	secret   []byte
	tokenTTL time.Duration
}

type Verified struct {
	UserID   int64
	Username string
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewService(store store.UserStore, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		store:    store,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, username, name, password string) (model.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minCredentialLength {
		return model.User{}, ErrInvalidUsername
	}
	if len(password) < minCredentialLength || len(password) > maxPasswordLength {
		return model.User{}, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Username:     username,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	id, err := s.store.CreateUser(ctx, &user)
	if err != nil {
		return model.User{}, err
	}
	user.ID = id
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (model.Token, model.User, error) {
	user, err := s.store.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Token{}, model.User{}, ErrInvalidCredentials
		}
		return model.Token{}, model.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.Token{}, model.User{}, ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return model.Token{}, model.User{}, err
	}
	return token, user, nil
}

func (s *Service) Authenticate(ctx context.Context, bearer string) (Verified, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(bearer, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Verified{}, errors.New("token expired")
		}
		return Verified{}, ErrInvalidToken
	}

	var userID int64
	if _, err := fmt.Sscan(c.Subject, &userID); err != nil || userID == 0 {
		return Verified{}, ErrInvalidToken
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Verified{}, ErrInvalidToken
		}
		return Verified{}, err
	}
	return Verified{UserID: user.ID, Username: user.Username}, nil
}

func (s *Service) issue(user model.User) (model.Token, error) {
	now := time.Now()
	expires := now.Add(s.tokenTTL)
	c := claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return model.Token{}, err
	}
	return model.Token{
		Token:     signed,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: expires,
	}, nil
}
