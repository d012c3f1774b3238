package accounts

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
)

// DecreaseBalance debits the account only if the current balance covers the
// amount. Zero rows affected means the guard rejected the debit; together
// with the CHECK constraint this keeps balances non-negative even when the
// same account is debited by concurrent transactions.
func (r *accountsRepo) DecreaseBalance(tx *sql.Tx, accountID string, amount int64) error {
	res, err := tx.Exec(`
		UPDATE accounts
		SET balance = balance - $2
		WHERE id = $1
		  AND balance >= $2
	`, accountID, amount)
	if err != nil {
		return fmt.Errorf("decrease balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return accounts.ErrInsufficientFunds
	}

	return nil
}
