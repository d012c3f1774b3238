package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
)

func (r *accountsRepo) Get(ctx context.Context, accountID string) (accounts.Account, error) {
	var acc accounts.Account

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, balance
		FROM accounts
		WHERE id = $1
	`, accountID).Scan(&acc.ID, &acc.Username, &acc.PasswordHash, &acc.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrAccountNotFound
		}

		return accounts.Account{}, fmt.Errorf("get account: %w", err)
	}

	return acc, nil
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (accounts.Account, error) {
	var acc accounts.Account

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, balance
		FROM accounts
		WHERE username = $1
	`, username).Scan(&acc.ID, &acc.Username, &acc.PasswordHash, &acc.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrAccountNotFound
		}

		return accounts.Account{}, fmt.Errorf("get account by username: %w", err)
	}

	return acc, nil
}
