package items

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/itemmart/internal/infra/pgtestutil"
	"github.com/fastprodman/itemmart/internal/repos/items"
)

func TestItems_Unlist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		listed  bool
		wantErr error
	}{
		{
			name:    "unlist_listed_item",
			listed:  true,
			wantErr: nil,
		},
		{
			name:    "already_unlisted",
			listed:  false,
			wantErr: items.ErrItemNotListed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			seedAccount(db, t, sellerID, "seller")

			const itemID = "dddddddd-0000-0000-0000-000000000010"
			seedItem(db, t, items.Item{
				ID: itemID, Name: "potion", Price: 100,
				SellerID: sellerID, Listed: tt.listed,
			})

			repo := New(db)

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				t.Fatalf("begin tx: %v", err)
			}
			defer func() { _ = tx.Rollback() }()

			err = repo.Unlist(tx, itemID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got %v, want %v", err, tt.wantErr)
			}

			err = tx.Commit()
			if err != nil {
				t.Fatalf("commit: %v", err)
			}

			got, err := repo.Get(ctx, itemID)
			if err != nil {
				t.Fatalf("get item: %v", err)
			}
			if got.Listed {
				t.Fatalf("item must not stay listed: %+v", got)
			}
			if got.BuyerID != "" {
				t.Fatalf("unlist must never set a buyer: %+v", got)
			}
		})
	}
}
