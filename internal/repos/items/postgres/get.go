package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/items"
)

const itemColumns = `id, name, price, seller_id, buyer_id, listed`

func scanItem(row *sql.Row) (items.Item, error) {
	var (
		item  items.Item
		buyer sql.NullString
	)

	err := row.Scan(&item.ID, &item.Name, &item.Price, &item.SellerID, &buyer, &item.Listed)
	if err != nil {
		return items.Item{}, err
	}

	item.BuyerID = buyer.String

	return item, nil
}

func (r *itemsRepo) Get(ctx context.Context, itemID string) (items.Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1
	`, itemID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return items.Item{}, items.ErrItemNotFound
		}

		return items.Item{}, fmt.Errorf("get item: %w", err)
	}

	return item, nil
}

func (r *itemsRepo) GetTx(tx *sql.Tx, itemID string) (items.Item, error) {
	row := tx.QueryRow(`
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1
	`, itemID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return items.Item{}, items.ErrItemNotFound
		}

		return items.Item{}, fmt.Errorf("get item in tx: %w", err)
	}

	return item, nil
}
