package mongorepo

import (
	"context"
	"errors"
	"testing"

	"immofund-backend/internal/domain/sale"
	"immofund-backend/pkg/id"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSale_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stamps timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		s := &sale.Sale{SaleID: id.NewID32(), BuyerID: "b", PropertyID: "p", Amount: 250000, Status: sale.StatusInProgress}
		if err := NewSaleRepository(mt.DB).Create(context.Background(), s); err != nil {
			mt.Fatalf("Create: %v", err)
		}
		if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
			mt.Fatalf("timestamps not set: %+v", s)
		}
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))
		err := NewSaleRepository(mt.DB).Create(context.Background(), &sale.Sale{SaleID: "s1"})
		if err == nil {
			mt.Fatalf("expected write error")
		}
	})
}

func TestSale_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	sid := id.NewID32()

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "sales"), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: sid},
			{Key: "buyerId", Value: "b"},
			{Key: "propertyId", Value: "p"},
			{Key: "amount", Value: 180000.0},
			{Key: "status", Value: "completed"},
		}))
		got, err := NewSaleRepository(mt.DB).GetByID(context.Background(), sid)
		if err != nil {
			mt.Fatalf("GetByID: %v", err)
		}
		if got.SaleID != sid || got.Status != sale.StatusCompleted || got.Amount != 180000 {
			mt.Fatalf("unexpected sale: %+v", got)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "sales"), mtest.FirstBatch))
		_, err := NewSaleRepository(mt.DB).GetByID(context.Background(), sid)
		if !errors.Is(err, sale.ErrNotFound) {
			mt.Fatalf("expected sale.ErrNotFound, got %v", err)
		}
	})
}

func TestSale_CompareAndSetStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(updated(1))
		if err := NewSaleRepository(mt.DB).CompareAndSetStatus(ctx, "s1", sale.StatusInProgress, sale.StatusCompleted); err != nil {
			mt.Fatalf("CAS: %v", err)
		}
	})

	mt.Run("already completed", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0), counted(mt, "sales", 1))
		err := NewSaleRepository(mt.DB).CompareAndSetStatus(ctx, "s1", sale.StatusInProgress, sale.StatusCompleted)
		if !errors.Is(err, sale.ErrStatusConflict) {
			mt.Fatalf("expected sale.ErrStatusConflict, got %v", err)
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0), counted(mt, "sales", 0))
		err := NewSaleRepository(mt.DB).CompareAndSetStatus(ctx, "s1", sale.StatusInProgress, sale.StatusCompleted)
		if !errors.Is(err, sale.ErrNotFound) {
			mt.Fatalf("expected sale.ErrNotFound, got %v", err)
		}
	})
}

func TestSale_ListByBuyer(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "sales"), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "s2"}, {Key: "buyerId", Value: "b"}, {Key: "status", Value: "in_progress"}},
			bson.D{{Key: "_id", Value: "s1"}, {Key: "buyerId", Value: "b"}, {Key: "status", Value: "completed"}},
		))
		got, err := NewSaleRepository(mt.DB).ListByBuyer(context.Background(), "b")
		if err != nil {
			mt.Fatalf("ListByBuyer: %v", err)
		}
		if len(got) != 2 || got[0].SaleID != "s2" || got[1].Status != sale.StatusCompleted {
			mt.Fatalf("unexpected list: %+v", got)
		}
	})

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "sales"), mtest.FirstBatch))
		got, err := NewSaleRepository(mt.DB).ListByBuyer(context.Background(), "nobody")
		if err != nil || got == nil || len(got) != 0 {
			mt.Fatalf("ListByBuyer = %v, %v", got, err)
		}
	})
}
