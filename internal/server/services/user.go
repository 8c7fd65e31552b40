// Package services contains the server's business logic. This file holds
// UserService: account registration and login, each ending in a signed token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLength = models.MaxNameLength
	maxPasswordBytes  = 72 // bcrypt input limit
)

// ErrInvalidCredentials is the single login failure, whether the username is
// unknown or the password is wrong.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", common.ErrorUnauthorized)

// TokenEncoder issues a signed token carrying one application claim.
type TokenEncoder interface {
	Encode(key string, value any) (string, error)
}

// UserService registers accounts and logs them in.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenEncoder
	cost        int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenEncoder) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		cost:        bcrypt.DefaultCost,
	}
}

// Register creates an account and returns it with a fresh token.
// A taken username fails with common.ErrorAlreadyExists before anything is
// written.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.UserWithToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrMissingFields)
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: username must be at most %d characters", common.ErrorValidation, maxUsernameLength)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", common.ErrorValidation, maxPasswordBytes)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, errUsernameTaken()
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrorInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, err)
	}

	user, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, errUsernameTaken()
		}
		return nil, fmt.Errorf("%w: creating user: %v", common.ErrorInternal, err)
	}

	return s.withToken(user)
}

// Login checks the password against the stored hash and returns the
// account with a fresh token. An unknown username costs one bcrypt
// comparison as well, so both failures take about the same time.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.UserWithToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrMissingFields)
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrorInternal, err)
	}

	if len(password) > maxPasswordBytes {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: checking password: %v", common.ErrorInternal, err)
	}

	return s.withToken(user)
}

func (s *UserService) withToken(user *models.User) (*models.UserWithToken, error) {
	token, err := s.tokens.Encode(common.UserIDClaim, strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %v", common.ErrorInternal, err)
	}

	return &models.UserWithToken{ID: user.ID, Username: user.Username, Token: token}, nil
}

func (s *UserService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("org-chart-dummy-password"), s.cost)
	})
	return s.dummyHash
}

func errUsernameTaken() error {
	return fmt.Errorf("%w: username is taken", common.ErrorAlreadyExists)
}
