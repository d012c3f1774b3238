package items

import (
	"context"
	"database/sql"
	"errors"
)

var ErrItemNotFound = errors.New("item not found")
var ErrItemNotListed = errors.New("item not listed")

// Item is one row of the items table. BuyerID is empty until the item is
// sold; unlisting never sets it.
type Item struct {
	ID       string
	Name     string
	Price    int64
	SellerID string
	BuyerID  string
	Listed   bool
}

type Items interface {
	Create(tx *sql.Tx, item Item) error
	Get(ctx context.Context, itemID string) (Item, error)
	GetTx(tx *sql.Tx, itemID string) (Item, error)
	ListMarket(ctx context.Context) ([]Item, error)
	MarkSold(tx *sql.Tx, itemID, buyerID string) error
	Unlist(tx *sql.Tx, itemID string) error
}
