package uowmock

import (
	"context"
	"errors"
	"testing"

	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/testutil/propertymock"
	"immofund-backend/internal/testutil/reservationmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	props := &propertymock.Repo{}
	resv := &reservationmock.Repo{}
	repos := uow.Repos{Properties: props, Reservations: resv}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Properties != props || r.Reservations != resv {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_Unimplemented(t *testing.T) {
	if err := New().WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx: want errUnimplemented, got %v", err)
	}
}

func TestStandalone(t *testing.T) {
	props := &propertymock.Repo{}
	m := Standalone(uow.Repos{Properties: props})

	err := m.WithinTx(context.Background(), func(uow.Repos) error {
		t.Fatalf("body must not run")
		return nil
	})
	if !errors.Is(err, uow.ErrTxUnsupported) {
		t.Fatalf("want ErrTxUnsupported, got %v", err)
	}
	if m.Direct().Properties != props {
		t.Fatalf("Direct: repos not forwarded")
	}
}

func TestTransactional_DirectFnOverrides(t *testing.T) {
	props := &propertymock.Repo{}
	m := Transactional(uow.Repos{})
	m.DirectFn = func() uow.Repos { return uow.Repos{Properties: props} }
	if m.Direct().Properties != props {
		t.Fatalf("DirectFn should take precedence")
	}
}
