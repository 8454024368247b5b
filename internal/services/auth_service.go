package services

import (
	"context"
	"errors"

	"github.com/coursify/coursify-backend/internal/auth"
	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/repositories"
	"github.com/coursify/coursify-backend/internal/security"
)

// AuthService defines signup and signin for one role scope. Admin and user
// auth are structurally identical; main wires two instances over the two
// account collections and token scopes.
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.Account, error)
	Signin(ctx context.Context, req *models.SigninRequest) (string, error)
}

type authService struct {
	accounts repositories.AccountRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(accounts repositories.AccountRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Signup hashes the password and inserts a new account. The response carries
// no token; callers sign in separately.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.Account, error) {
	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	account.Password = ""
	return account, nil
}

// Signin verifies the credentials and issues a token scoped to this
// service's role. Unknown email and wrong password are indistinguishable.
func (s *authService) Signin(ctx context.Context, req *models.SigninRequest) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := security.CheckPassword(account.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(account.ID.Hex())
}
