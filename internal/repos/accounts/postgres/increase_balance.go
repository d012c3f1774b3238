package accounts

import (
	"database/sql"
	"fmt"
)

func (r *accountsRepo) IncreaseBalance(tx *sql.Tx, accountID string, amount int64) error {
	_, err := tx.Exec(`
		UPDATE accounts
		SET balance = balance + $2
		WHERE id = $1
	`, accountID, amount)
	if err != nil {
		return fmt.Errorf("increase balance: %w", err)
	}

	return nil
}
