package market

import "errors"

var (
	ErrMissingItemID   = errors.New("missing item id")
	ErrMissingItemName = errors.New("missing item name")
	ErrInvalidPrice    = errors.New("invalid price")
)

// Receipt confirms a completed purchase.
type Receipt struct {
	ItemID  string
	Message string
}
