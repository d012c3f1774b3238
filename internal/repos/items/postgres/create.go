package items

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/items"
)

func (r *itemsRepo) Create(tx *sql.Tx, item items.Item) error {
	_, err := tx.Exec(`
		INSERT INTO items (id, name, price, seller_id, listed)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.Name, item.Price, item.SellerID, item.Listed)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}
