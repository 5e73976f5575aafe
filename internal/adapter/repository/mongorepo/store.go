package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// store binds a collection to an optional session. Every call made with a
// session joins that session's open transaction.
type store struct {
	coll *mongo.Collection
	sess mongo.Session
}

func (s store) bind(ctx context.Context) context.Context {
	if s.sess == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, s.sess)
}

func (s store) insert(ctx context.Context, doc any) error {
	if _, err := s.coll.InsertOne(s.bind(ctx), doc); err != nil {
		return fmt.Errorf("%s: insert: %w", s.coll.Name(), err)
	}
	return nil
}

func (s store) findByID(ctx context.Context, id string, out any, notFound error) error {
	err := s.coll.FindOne(s.bind(ctx), bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("%s: find: %w", s.coll.Name(), err)
	}
	return nil
}

func (s store) find(ctx context.Context, filter bson.M, sort bson.D, out any) error {
	cur, err := s.coll.Find(s.bind(ctx), filter, options.Find().SetSort(sort))
	if err != nil {
		return fmt.Errorf("%s: find: %w", s.coll.Name(), err)
	}
	if err := cur.All(s.bind(ctx), out); err != nil {
		return fmt.Errorf("%s: decode: %w", s.coll.Name(), err)
	}
	return nil
}

// casStatus sets status=to on the document only while its status is in from.
func casStatus[S ~string](ctx context.Context, s store, id string, from []S, to S, notFound, conflict error) error {
	allowed := make(bson.A, len(from))
	for i, st := range from {
		allowed[i] = string(st)
	}
	res, err := s.coll.UpdateOne(s.bind(ctx),
		bson.M{"_id": id, "status": bson.M{"$in": allowed}},
		bson.M{"$set": bson.M{"status": string(to), "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("%s: update status: %w", s.coll.Name(), err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	return s.missingOr(ctx, id, notFound, conflict)
}

func (s store) deleteIfStatus(ctx context.Context, id, status string, notFound, conflict error) error {
	res, err := s.coll.DeleteOne(s.bind(ctx), bson.M{"_id": id, "status": status})
	if err != nil {
		return fmt.Errorf("%s: conditional delete: %w", s.coll.Name(), err)
	}
	if res.DeletedCount > 0 {
		return nil
	}
	return s.missingOr(ctx, id, notFound, conflict)
}

func (s store) deleteByID(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(s.bind(ctx), bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: delete: %w", s.coll.Name(), err)
	}
	return nil
}

// missingOr reports notFound when the document is absent, otherwise present.
func (s store) missingOr(ctx context.Context, id string, notFound, present error) error {
	n, err := s.coll.CountDocuments(s.bind(ctx), bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("%s: count: %w", s.coll.Name(), err)
	}
	if n == 0 {
		return notFound
	}
	return present
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
