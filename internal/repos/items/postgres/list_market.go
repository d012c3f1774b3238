package items

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/items"
)

func (r *itemsRepo) ListMarket(ctx context.Context) ([]items.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE listed
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query market items: %w", err)
	}
	defer rows.Close()

	result := make([]items.Item, 0)

	for rows.Next() {
		var (
			item  items.Item
			buyer sql.NullString
		)

		err = rows.Scan(&item.ID, &item.Name, &item.Price, &item.SellerID, &buyer, &item.Listed)
		if err != nil {
			return nil, fmt.Errorf("scan market item: %w", err)
		}

		item.BuyerID = buyer.String
		result = append(result, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate market items: %w", err)
	}

	return result, nil
}
