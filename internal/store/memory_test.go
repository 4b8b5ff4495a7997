package store

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryStoreInsertAndFindAll(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	type doc struct {
		Title     string    `bson:"title"`
		Tags      []string  `bson:"tags"`
		CreatedAt time.Time `bson:"created_at"`
	}

	id, err := st.InsertOne(ctx, CollectionBlogPosts, doc{
		Title:     "first",
		Tags:      []string{"go"},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty identifier")
	}

	docs, err := st.FindAll(ctx, CollectionBlogPosts)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	oid, ok := docs[0]["_id"].(primitive.ObjectID)
	if !ok || oid.Hex() != id {
		t.Fatalf("stored _id does not match returned id %q: %v", id, docs[0]["_id"])
	}
	if docs[0]["title"] != "first" {
		t.Fatalf("unexpected title: %v", docs[0]["title"])
	}

	// stored values must decode the way the Mongo driver would
	if _, ok := docs[0]["tags"].(primitive.A); !ok {
		t.Fatalf("expected primitive.A for tags, got %T", docs[0]["tags"])
	}
	if _, ok := docs[0]["created_at"].(primitive.DateTime); !ok {
		t.Fatalf("expected primitive.DateTime for created_at, got %T", docs[0]["created_at"])
	}
}

func TestMemoryStoreCollectionNames(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for _, col := range []string{CollectionProjects, CollectionBlogPosts} {
		if _, err := st.InsertOne(ctx, col, map[string]string{"title": "x"}); err != nil {
			t.Fatalf("insert into %s failed: %v", col, err)
		}
	}

	names, err := st.CollectionNames(ctx)
	if err != nil {
		t.Fatalf("collection names failed: %v", err)
	}
	if len(names) != 2 || names[0] != CollectionBlogPosts || names[1] != CollectionProjects {
		t.Fatalf("expected sorted collection names, got %v", names)
	}
}

func TestMemoryStoreFindAllEmptyCollection(t *testing.T) {
	st := NewMemoryStore()

	docs, err := st.FindAll(context.Background(), CollectionChats)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected empty result, got %d docs", len(docs))
	}
}
