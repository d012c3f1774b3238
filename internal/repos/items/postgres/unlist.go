package items

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/items"
)

// Unlist takes the item off the market with the same conditional shape as
// MarkSold, so an unlist racing a purchase can never both observe the
// listed state.
func (r *itemsRepo) Unlist(tx *sql.Tx, itemID string) error {
	res, err := tx.Exec(`
		UPDATE items
		SET listed = FALSE
		WHERE id = $1
		  AND listed
	`, itemID)
	if err != nil {
		return fmt.Errorf("unlist item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return items.ErrItemNotListed
	}

	return nil
}
