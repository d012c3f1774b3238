package market

import (
	"context"
	"testing"
	"time"

	"github.com/fastprodman/itemmart/internal/infra/pgtestutil"
	"github.com/fastprodman/itemmart/internal/repos/accounts"
	"github.com/fastprodman/itemmart/internal/repos/items"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedAccount(t, db, testSellerID, "seller", 0)

	svc := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	t.Run("creates_listed_item", func(t *testing.T) {
		item, err := svc.List(ctx, testSellerID, "iron sword", 3_000)
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.True(t, item.Listed)
		assert.Empty(t, item.BuyerID)

		got, err := svc.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item, got)

		market, err := svc.MarketItems(ctx)
		require.NoError(t, err)
		assert.Len(t, market, 1)
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		_, err := svc.List(ctx, testSellerID, "", 100)
		require.ErrorIs(t, err, ErrMissingItemName)
	})

	t.Run("rejects_non_positive_price", func(t *testing.T) {
		_, err := svc.List(ctx, testSellerID, "freebie", 0)
		require.ErrorIs(t, err, ErrInvalidPrice)

		_, err = svc.List(ctx, testSellerID, "negative", -5)
		require.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("rejects_unknown_seller", func(t *testing.T) {
		_, err := svc.List(ctx, "eeeeeeee-0000-0000-0000-00000000dead", "ghost item", 100)
		require.ErrorIs(t, err, accounts.ErrAccountNotFound)
	})
}

func TestUnlist(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedAccount(t, db, testSellerID, "seller", 0)

	svc := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	item, err := svc.List(ctx, testSellerID, "old helmet", 500)
	require.NoError(t, err)

	got, err := svc.Unlist(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, got.Listed)
	assert.Empty(t, got.BuyerID)

	// second unlist conflicts, same as a purchase racing an unlist
	_, err = svc.Unlist(ctx, item.ID)
	require.ErrorIs(t, err, items.ErrItemNotListed)

	_, err = svc.Unlist(ctx, "ffffffff-0000-0000-0000-00000000dead")
	require.ErrorIs(t, err, items.ErrItemNotFound)
}
