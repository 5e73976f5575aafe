package gormrepo

import (
	"context"
	"errors"
	"testing"

	"immofund-backend/internal/domain/sale"
	"immofund-backend/internal/testutil/dbtest"
	"immofund-backend/pkg/id"
)

func makeSale(buyer string) *sale.Sale {
	return &sale.Sale{
		SaleID:     id.NewID32(),
		BuyerID:    buyer,
		PropertyID: id.NewID32(),
		Amount:     310_000,
		Status:     sale.StatusInProgress,
	}
}

func TestSale_Lifecycle(t *testing.T) {
	repo := NewSaleRepository(dbtest.Open(t))
	ctx := context.Background()

	buyer := id.NewID32()
	s := makeSale(buyer)
	other := makeSale(id.NewID32())
	for _, x := range []*sale.Sale{s, other} {
		if err := repo.Create(ctx, x); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByID(ctx, s.SaleID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Amount != 310_000 || got.Status != sale.StatusInProgress {
		t.Fatalf("unexpected sale: %+v", got)
	}

	if err := repo.CompareAndSetStatus(ctx, s.SaleID, sale.StatusInProgress, sale.StatusCompleted); err != nil {
		t.Fatalf("CAS: %v", err)
	}
	if err := repo.CompareAndSetStatus(ctx, s.SaleID, sale.StatusInProgress, sale.StatusCompleted); !errors.Is(err, sale.ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict on repeat, got %v", err)
	}

	mine, err := repo.ListByBuyer(ctx, buyer)
	if err != nil || len(mine) != 1 {
		t.Fatalf("ListByBuyer = %v, %v", mine, err)
	}
	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListAll = %v, %v", all, err)
	}

	if err := repo.Delete(ctx, other.SaleID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, other.SaleID); !errors.Is(err, sale.ErrNotFound) {
		t.Fatalf("expected sale.ErrNotFound after delete, got %v", err)
	}
}
