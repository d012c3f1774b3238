package items

import (
	"context"
	"testing"
	"time"

	"github.com/fastprodman/itemmart/internal/infra/pgtestutil"
	"github.com/fastprodman/itemmart/internal/repos/items"
)

func TestItems_ListMarket_OnlyListed(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedAccount(db, t, sellerID, "seller")
	seedAccount(db, t, buyerID, "buyer")

	seedItem(db, t, items.Item{
		ID: "dddddddd-0000-0000-0000-000000000020", Name: "listed one",
		Price: 100, SellerID: sellerID, Listed: true,
	})
	seedItem(db, t, items.Item{
		ID: "dddddddd-0000-0000-0000-000000000021", Name: "sold one",
		Price: 200, SellerID: sellerID, BuyerID: buyerID, Listed: false,
	})
	seedItem(db, t, items.Item{
		ID: "dddddddd-0000-0000-0000-000000000022", Name: "listed two",
		Price: 300, SellerID: sellerID, Listed: true,
	})

	repo := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	got, err := repo.ListMarket(ctx)
	if err != nil {
		t.Fatalf("list market: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("want 2 listed items, got %d: %+v", len(got), got)
	}

	for _, item := range got {
		if !item.Listed {
			t.Fatalf("unlisted item in market: %+v", item)
		}
		if item.BuyerID != "" {
			t.Fatalf("market item with buyer: %+v", item)
		}
	}
}
