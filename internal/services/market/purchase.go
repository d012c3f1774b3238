package market

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/infra/pgutils"
	"github.com/fastprodman/itemmart/internal/repos/accounts"
	"github.com/fastprodman/itemmart/internal/repos/items"
)

// Purchase runs one purchase attempt in a single DB transaction:
//
// 1) Read buyer balance and item, validate listed state and funds.
// 2) Conditionally flip the item listed -> sold (rows affected is the
//    race signal; 0 means another buyer won and the whole tx aborts).
// 3) Debit the buyer with the balance guard, credit the seller.
//
// Any failure rolls back everything; losers leave no trace.
func (s *MarketService) Purchase(ctx context.Context, buyerID, itemID string) (Receipt, error) {
	if itemID == "" {
		return Receipt{}, ErrMissingItemID
	}

	var receipt Receipt

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		// 1) Validate buyer, item, state and funds
		balance, err := s.accounts.GetBalanceTx(tx, buyerID)
		if err != nil {
			return fmt.Errorf("get buyer balance: %w", err)
		}

		item, err := s.items.GetTx(tx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if !item.Listed {
			return fmt.Errorf("check listed: %w", items.ErrItemNotListed)
		}

		// pre-check against the balance read above
		if balance < item.Price {
			return fmt.Errorf("pre-check funds: %w", accounts.ErrInsufficientFunds)
		}

		// 2) Conditional transition; exactly one concurrent attempt passes
		err = s.items.MarkSold(tx, item.ID, buyerID)
		if err != nil {
			return fmt.Errorf("mark sold: %w", err)
		}

		// 3) Move the money. The debit re-checks the balance in its WHERE
		// clause, so a concurrent debit of the same buyer cannot push the
		// balance negative.
		err = s.accounts.DecreaseBalance(tx, buyerID, item.Price)
		if err != nil {
			return fmt.Errorf("debit buyer: %w", err)
		}

		err = s.accounts.IncreaseBalance(tx, item.SellerID, item.Price)
		if err != nil {
			return fmt.Errorf("credit seller: %w", err)
		}

		receipt = Receipt{ItemID: item.ID, Message: "purchase complete"}

		return nil
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("purchase: %w", err)
	}

	return receipt, nil
}
