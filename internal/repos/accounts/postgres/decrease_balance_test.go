package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/itemmart/internal/infra/pgtestutil"
	"github.com/fastprodman/itemmart/internal/repos/accounts"
)

func TestAccounts_DecreaseBalance(t *testing.T) {
	t.Parallel()

	seedAccount := func(db *sql.DB, t *testing.T, id string, balance int64) {
		_, err := db.Exec(`
			INSERT INTO accounts (id, username, password_hash, balance)
			VALUES ($1, $2, $3, $4)
		`, id, "user_"+id[:8], "hash", balance)
		if err != nil {
			t.Fatalf("seed account(%s): %v", id, err)
		}
	}

	tests := []struct {
		name        string
		balance     int64
		amount      int64
		wantErr     error
		wantBalance int64
	}{
		{
			name:        "decrease_ok",
			balance:     1_000,
			amount:      300,
			wantErr:     nil,
			wantBalance: 700,
		},
		{
			name:        "decrease_to_zero",
			balance:     500,
			amount:      500,
			wantErr:     nil,
			wantBalance: 0,
		},
		{
			name:        "insufficient_funds",
			balance:     100,
			amount:      101,
			wantErr:     accounts.ErrInsufficientFunds,
			wantBalance: 100,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			const accID = "bbbbbbbb-0000-0000-0000-000000000001"
			seedAccount(db, t, accID, tt.balance)

			repo := New(db)

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				t.Fatalf("begin tx: %v", err)
			}
			defer func() { _ = tx.Rollback() }()

			err = repo.DecreaseBalance(tx, accID, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got %v, want %v", err, tt.wantErr)
			}

			err = tx.Commit()
			if err != nil {
				t.Fatalf("commit: %v", err)
			}

			got, err := repo.Get(ctx, accID)
			if err != nil {
				t.Fatalf("get account: %v", err)
			}
			if got.Balance != tt.wantBalance {
				t.Fatalf("balance mismatch: want %d, got %d", tt.wantBalance, got.Balance)
			}
		})
	}
}
