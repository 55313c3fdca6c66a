// Package store is a thin pass-through adapter over MongoDB. Each call is an
// independent round-trip; there are no transactions or locks across calls.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the application.
const (
	UserCollection     = "user"
	NoteCollection     = "note"
	ProgressCollection = "progress"
)

var (
	// ErrUnavailable is returned when no database connection exists.
	ErrUnavailable = errors.New("store: database not available")
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: document not found")
)

// Store is the persistence surface handlers depend on.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Mongo implements Store against a mongo client. A nil client is legal and
// makes every call return ErrUnavailable, so the process can serve in a
// degraded state when the database was unreachable at boot.
type Mongo struct {
	client *mongo.Client
	dbName string
}

func New(client *mongo.Client, dbName string) *Mongo {
	return &Mongo{client: client, dbName: dbName}
}

func (s *Mongo) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

func (s *Mongo) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if s.client == nil {
		return primitive.NilObjectID, ErrUnavailable
	}
	res, err := s.collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store: inserted id is not an ObjectID")
	}
	return id, nil
}

func (s *Mongo) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	cursor, err := s.collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Mongo) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	var doc bson.M
	if err := s.collection(collection).FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *Mongo) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	return s.FindOne(ctx, collection, bson.M{"_id": id})
}

func (s *Mongo) Collections(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	return s.client.Database(s.dbName).ListCollectionNames(ctx, bson.M{})
}

func (s *Mongo) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, nil)
}
