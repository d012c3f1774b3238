package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *accountsRepo) Create(ctx context.Context, acc accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, password_hash, balance)
		VALUES ($1, $2, $3, $4)
	`, acc.ID, acc.Username, acc.PasswordHash, acc.Balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return accounts.ErrDuplicateUsername
			}
		}

		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}
