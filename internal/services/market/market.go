package market

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/itemmart/internal/repos/accounts"
	pgaccounts "github.com/fastprodman/itemmart/internal/repos/accounts/postgres"
	"github.com/fastprodman/itemmart/internal/repos/items"
	pgitems "github.com/fastprodman/itemmart/internal/repos/items/postgres"
)

type MarketService struct {
	db       *sql.DB
	accounts accounts.Accounts
	items    items.Items
}

func New(dbx *sql.DB) *MarketService {
	return &MarketService{
		db:       dbx,
		accounts: pgaccounts.New(dbx),
		items:    pgitems.New(dbx),
	}
}

// MarketItems returns every item currently listed for sale.
func (s *MarketService) MarketItems(ctx context.Context) ([]items.Item, error) {
	listed, err := s.items.ListMarket(ctx)
	if err != nil {
		return nil, fmt.Errorf("market items: %w", err)
	}

	return listed, nil
}

// GetItem returns a single item regardless of its listing state.
func (s *MarketService) GetItem(ctx context.Context, itemID string) (items.Item, error) {
	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return items.Item{}, fmt.Errorf("get item: %w", err)
	}

	return item, nil
}
