package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests and local development
// without a MongoDB instance. Documents round-trip through BSON so the
// stored value shapes match what the Mongo driver decodes.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		name:        "portfolio",
		collections: make(map[string][]bson.M),
	}
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}

	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	stored["_id"] = id

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], stored)
	s.mu.Unlock()

	return id.Hex(), nil
}

func (s *MemoryStore) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]bson.M, len(s.collections[collection]))
	copy(docs, s.collections[collection])
	return docs, nil
}

func (s *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Name() string {
	return s.name
}
