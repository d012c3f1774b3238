package accounts

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
)

func (r *accountsRepo) Exists(tx *sql.Tx, accountID string) error {
	var exists bool

	err := tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)
	`, accountID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}

	if !exists {
		return accounts.ErrAccountNotFound
	}

	return nil
}
