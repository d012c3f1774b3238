package items

import (
	"database/sql"

	"github.com/fastprodman/itemmart/internal/repos/items"
)

var _ items.Items = (*itemsRepo)(nil)

type itemsRepo struct{ db *sql.DB }

func New(db *sql.DB) *itemsRepo {
	return &itemsRepo{db: db}
}
