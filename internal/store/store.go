// Package store wraps the document database behind a small accessor so that
// request handlers only depend on insert-one / find-all semantics.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names, one per entity kind.
const (
	CollectionBlogPosts   = "blogpost"
	CollectionCaseStudies = "casestudy"
	CollectionProjects    = "project"
	CollectionChats       = "chat"
)

// Store is the document-store accessor shared by all request handlers.
// Documents are immutable once inserted; there is no update or delete path.
type Store interface {
	// InsertOne stores doc in the named collection and returns the assigned
	// identifier as a hex string.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	// FindAll returns every document in the named collection in natural order.
	FindAll(ctx context.Context, collection string) ([]bson.M, error)
	// CollectionNames lists the collections present in the database.
	CollectionNames(ctx context.Context) ([]string, error)
	// Name returns the database name.
	Name() string
}

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{db: client.Database(dbName)}
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (s *MongoStore) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
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

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoStore) Name() string {
	return s.db.Name()
}
