package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tags the value shapes that appear in stored documents.
type Kind int

const (
	KindText Kind = iota
	KindTextList
	KindTextMap
	KindBool
	KindTimestamp
)

// Value is a stored field decoded into one of the known kinds, each with a
// single serialization rule.
type Value struct {
	Kind Kind
	Text string
	List []string
	Map  map[string]string
	Bool bool
	Time time.Time
}

// Classify maps a raw decoded BSON value onto its Value kind. Unknown shapes
// degrade to their text rendering.
func Classify(v interface{}) Value {
	switch vv := v.(type) {
	case string:
		return Value{Kind: KindText, Text: vv}
	case bool:
		return Value{Kind: KindBool, Bool: vv}
	case primitive.DateTime:
		return Value{Kind: KindTimestamp, Time: vv.Time().UTC()}
	case time.Time:
		return Value{Kind: KindTimestamp, Time: vv.UTC()}
	case primitive.A:
		list := make([]string, 0, len(vv))
		for _, item := range vv {
			list = append(list, asText(item))
		}
		return Value{Kind: KindTextList, List: list}
	case bson.M:
		m := make(map[string]string, len(vv))
		for k, item := range vv {
			m[k] = asText(item)
		}
		return Value{Kind: KindTextMap, Map: m}
	case nil:
		return Value{Kind: KindText, Text: ""}
	default:
		return Value{Kind: KindText, Text: asText(vv)}
	}
}

// JSON returns the response representation of the value. Timestamps render
// as ISO-8601 so listing order can be derived by string comparison.
func (v Value) JSON() interface{} {
	switch v.Kind {
	case KindTextList:
		return v.List
	case KindTextMap:
		return v.Map
	case KindBool:
		return v.Bool
	case KindTimestamp:
		return v.Time.Format(time.RFC3339)
	default:
		return v.Text
	}
}

// Serialize converts a stored document into its JSON-friendly form: the
// store-assigned identifier becomes a string under "id" and every other
// field follows its kind's serialization rule.
func Serialize(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				out["id"] = oid.Hex()
			} else {
				out["id"] = asText(v)
			}
			continue
		}
		out[k] = Classify(v).JSON()
	}
	return out
}

func asText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
