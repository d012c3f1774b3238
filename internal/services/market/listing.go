package market

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/infra/pgutils"
	"github.com/fastprodman/itemmart/internal/repos/items"
	"github.com/google/uuid"
)

// List puts a new item on the market for the given seller.
func (s *MarketService) List(ctx context.Context, sellerID, name string, price int64) (items.Item, error) {
	if name == "" {
		return items.Item{}, ErrMissingItemName
	}

	if price <= 0 {
		return items.Item{}, ErrInvalidPrice
	}

	item := items.Item{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		SellerID: sellerID,
		Listed:   true,
	}

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.accounts.Exists(tx, sellerID)
		if err != nil {
			return fmt.Errorf("check seller exists: %w", err)
		}

		err = s.items.Create(tx, item)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		return nil
	})
	if err != nil {
		return items.Item{}, fmt.Errorf("list item: %w", err)
	}

	return item, nil
}

// Unlist takes an item off the market. Uses the same conditional transition
// as Purchase, so racing an unlist against a purchase resolves to exactly
// one of them observing the listed state.
func (s *MarketService) Unlist(ctx context.Context, itemID string) (items.Item, error) {
	var item items.Item

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error

		item, err = s.items.GetTx(tx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		err = s.items.Unlist(tx, itemID)
		if err != nil {
			return fmt.Errorf("unlist item: %w", err)
		}

		item.Listed = false

		return nil
	})
	if err != nil {
		return items.Item{}, fmt.Errorf("unlist: %w", err)
	}

	return item, nil
}
