package mongorepo

import (
	"context"
	"errors"
	"time"

	"immofund-backend/internal/domain/uow"
	"immofund-backend/internal/infrastructure/docstore"

	"go.mongodb.org/mongo-driver/mongo"
)

// codeIllegalOperation is what a standalone mongod answers to a transaction.
const codeIllegalOperation = 20

type MongoUoW struct {
	db          *mongo.Database
	txSupported bool
}

// NewMongoUoW takes the result of docstore.SupportsTransactions; when false
// WithinTx fails fast with uow.ErrTxUnsupported.
func NewMongoUoW(db *mongo.Database, txSupported bool) *MongoUoW {
	return &MongoUoW{db: db, txSupported: txSupported}
}

func (u *MongoUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if !u.txSupported {
		return uow.ErrTxUnsupported
	}
	sess, err := u.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(context.Background())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(reposOn(u.db, sess))
	})
	if isTxUnsupported(err) {
		return uow.ErrTxUnsupported
	}
	return err
}

func (u *MongoUoW) Direct() uow.Repos { return reposOn(u.db, nil) }

func reposOn(db *mongo.Database, sess mongo.Session) uow.Repos {
	bound := func(coll string) store { return store{coll: db.Collection(coll), sess: sess} }
	return uow.Repos{
		Properties:   &PropertyRepository{s: bound(docstore.CollProperties)},
		Reservations: &ReservationRepository{s: bound(docstore.CollReservations)},
		Projects:     &ProjectRepository{s: bound(docstore.CollProjects)},
		Investments:  &InvestmentRepository{s: bound(docstore.CollInvestments)},
		Sales:        &SaleRepository{s: bound(docstore.CollSales)},
	}
}

func isTxUnsupported(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(codeIllegalOperation)
}

// stampCreate fills the timestamps gorm would set through autoCreateTime.
func stampCreate(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
