package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
	pgaccounts "github.com/fastprodman/itemmart/internal/repos/accounts/postgres"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingUsername    = errors.New("missing username")
	ErrMissingPassword    = errors.New("missing password")
	ErrNegativeBalance    = errors.New("negative opening balance")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	db       *sql.DB
	accounts accounts.Accounts
}

func New(dbx *sql.DB) *UserService {
	return &UserService{
		db:       dbx,
		accounts: pgaccounts.New(dbx),
	}
}

// Register creates a new account with a bcrypt-hashed password and the
// given opening balance in minor units.
func (s *UserService) Register(ctx context.Context, username, password string, openingBalance int64) (accounts.Account, error) {
	if username == "" {
		return accounts.Account{}, ErrMissingUsername
	}

	if password == "" {
		return accounts.Account{}, ErrMissingPassword
	}

	if openingBalance < 0 {
		return accounts.Account{}, ErrNegativeBalance
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return accounts.Account{}, fmt.Errorf("hash password: %w", err)
	}

	acc := accounts.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Balance:      openingBalance,
	}

	err = s.accounts.Create(ctx, acc)
	if err != nil {
		return accounts.Account{}, fmt.Errorf("create account: %w", err)
	}

	return acc, nil
}

// Authenticate checks the username/password pair. Unknown usernames and
// wrong passwords both come back as ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (accounts.Account, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return accounts.Account{}, ErrInvalidCredentials
		}

		return accounts.Account{}, fmt.Errorf("get account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password))
	if err != nil {
		return accounts.Account{}, ErrInvalidCredentials
	}

	return acc, nil
}

// GetAccount returns the account for the given id.
func (s *UserService) GetAccount(ctx context.Context, accountID string) (accounts.Account, error) {
	acc, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return accounts.Account{}, fmt.Errorf("get account: %w", err)
	}

	return acc, nil
}
