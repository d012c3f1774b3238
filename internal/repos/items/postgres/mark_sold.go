package items

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/items"
)

// MarkSold flips the item from listed to sold and records the buyer, but
// only if the row is still listed at the moment of the write. The rows
// affected count is the race signal: 1 means this transaction won the item,
// 0 means a competing transaction got there first.
func (r *itemsRepo) MarkSold(tx *sql.Tx, itemID, buyerID string) error {
	res, err := tx.Exec(`
		UPDATE items
		SET listed = FALSE,
		    buyer_id = $2
		WHERE id = $1
		  AND listed
	`, itemID, buyerID)
	if err != nil {
		return fmt.Errorf("mark sold: %w", err)
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
