package accounts

import (
	"context"
	"database/sql"
	"errors"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrDuplicateUsername = errors.New("duplicate username")
var ErrInsufficientFunds = errors.New("insufficient funds")

// Account is one row of the accounts table. Balance is kept in the
// smallest currency unit.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Balance      int64
}

type Accounts interface {
	Create(ctx context.Context, acc Account) error
	Get(ctx context.Context, accountID string) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	Exists(tx *sql.Tx, accountID string) error
	GetBalanceTx(tx *sql.Tx, accountID string) (int64, error)
	IncreaseBalance(tx *sql.Tx, accountID string, amount int64) error
	DecreaseBalance(tx *sql.Tx, accountID string, amount int64) error
}
