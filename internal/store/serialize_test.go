package store

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeConvertsIDAndTimestamp(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	doc := bson.M{
		"_id":        oid,
		"title":      "hello",
		"created_at": primitive.NewDateTimeFromTime(created),
	}

	out := Serialize(doc)

	if out["id"] != oid.Hex() {
		t.Fatalf("expected id %q, got %v", oid.Hex(), out["id"])
	}
	if _, exists := out["_id"]; exists {
		t.Fatal("raw _id should not appear in serialized output")
	}
	if out["created_at"] != "2025-03-14T09:00:00Z" {
		t.Fatalf("expected RFC3339 created_at, got %v", out["created_at"])
	}
	if out["title"] != "hello" {
		t.Fatalf("expected title passthrough, got %v", out["title"])
	}
}

func TestSerializeListsAndMaps(t *testing.T) {
	doc := bson.M{
		"tags":     primitive.A{"go", "mongo"},
		"links":    bson.M{"repo": "https://example.com"},
		"featured": true,
	}

	out := Serialize(doc)

	tags, ok := out["tags"].([]string)
	if !ok || len(tags) != 2 || tags[0] != "go" {
		t.Fatalf("expected string list for tags, got %v", out["tags"])
	}

	links, ok := out["links"].(map[string]string)
	if !ok || links["repo"] != "https://example.com" {
		t.Fatalf("expected string map for links, got %v", out["links"])
	}

	if out["featured"] != true {
		t.Fatalf("expected bool passthrough for featured, got %v", out["featured"])
	}
}

func TestClassifyUnknownShapeDegradesToText(t *testing.T) {
	v := Classify(int32(7))
	if v.Kind != KindText || v.Text != "7" {
		t.Fatalf("expected text fallback, got %+v", v)
	}
}
