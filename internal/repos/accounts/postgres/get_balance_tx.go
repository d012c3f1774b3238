package accounts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
)

// GetBalanceTx reads the balance inside an open transaction. Plain read,
// no FOR UPDATE; callers that mutate the balance afterwards must go through
// DecreaseBalance, whose guard re-checks the amount.
func (r *accountsRepo) GetBalanceTx(tx *sql.Tx, accountID string) (int64, error) {
	var balance int64

	err := tx.QueryRow(`
		SELECT balance
		FROM accounts
		WHERE id = $1
	`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, accounts.ErrAccountNotFound
		}

		return 0, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}
