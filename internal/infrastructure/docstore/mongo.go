package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollProperties   = "properties"
	CollProjects     = "projects"
	CollInvestments  = "investments"
	CollReservations = "reservations"
	CollSales        = "sales"
)

func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

type helloReply struct {
	SetName string `bson:"setName"`
	Msg     string `bson:"msg"`
}

// SupportsTransactions probes the deployment: transactions need a replica set
// member or a mongos router.
func SupportsTransactions(ctx context.Context, client *mongo.Client) (bool, error) {
	var reply helloReply
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&reply)
	if err != nil {
		return false, fmt.Errorf("mongo hello: %w", err)
	}
	return reply.SetName != "" || reply.Msg == "isdbgrid", nil
}

// EnsureIndexes creates the secondary indexes used by the list queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]string{
		CollProperties:   {"ownerId"},
		CollProjects:     {"promoterId"},
		CollInvestments:  {"investorId", "projectId"},
		CollReservations: {"buyerId", "ownerId", "propertyId"},
		CollSales:        {"buyerId", "propertyId"},
	}
	for coll, fields := range specs {
		models := make([]mongo.IndexModel, 0, len(fields))
		for _, f := range fields {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: f, Value: 1}}})
		}
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes on %s: %w", coll, err)
		}
	}
	return nil
}
