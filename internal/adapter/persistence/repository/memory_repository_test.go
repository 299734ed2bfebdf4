package repository

import (
	"context"
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"
)

func TestCheckoutStateMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCheckoutStateMemoryRepository()

	t.Run("missing key", func(t *testing.T) {
		_, found, err := repo.Get(ctx, "checkoutState:none")
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("set get delete", func(t *testing.T) {
		value := []byte(`{"currentStep":1}`)
		if err := repo.Set(ctx, "checkoutState:s1", value); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		value[0] = 'x'

		got, found, err := repo.Get(ctx, "checkoutState:s1")
		if err != nil || !found {
			t.Fatalf("expected value, got found=%v err=%v", found, err)
		}
		if string(got) != `{"currentStep":1}` {
			t.Fatalf("stored value was aliased: %s", got)
		}

		if err := repo.Delete(ctx, "checkoutState:s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, found, _ := repo.Get(ctx, "checkoutState:s1"); found {
			t.Fatalf("expected key to be deleted")
		}
	})
}

func TestTransactionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionMemoryRepository()
	tx := entities.Transaction{
		ID:        "tx-1",
		Status:    entities.TransactionStatusApproved,
		Amount:    101000,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("create and get", func(t *testing.T) {
		if _, err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.GetByID(ctx, "tx-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 101000 || got.Status != entities.TransactionStatusApproved {
			t.Fatalf("unexpected transaction: %+v", got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		if _, err := repo.Create(ctx, tx); err == nil {
			t.Fatalf("expected duplicate error")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "tx-unknown")
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty transaction, got %+v err=%v", got, err)
		}
	})
}

func TestTransactionItemMapping(t *testing.T) {
	tx := entities.Transaction{
		ID:        "tx-2",
		Status:    entities.TransactionStatusFailed,
		CardBrand: entities.CardBrandMastercard,
		CreatedAt: time.Date(2025, 5, 6, 7, 8, 9, 10, time.UTC),
	}
	got := fromTransactionItem(toTransactionItem(tx))
	if got.ID != tx.ID || got.Status != tx.Status || got.CardBrand != tx.CardBrand || !got.CreatedAt.Equal(tx.CreatedAt) {
		t.Fatalf("mapping lost data: %+v", got)
	}
}
