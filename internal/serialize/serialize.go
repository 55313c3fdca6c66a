// Package serialize shapes raw store documents for the wire: the native
// primary key becomes a string "id" field and timestamp values become
// RFC 3339 strings. Serialization is idempotent, so a document that already
// went through it passes unchanged.
package serialize

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document returns a transport-safe copy of doc. A nil or empty document is
// returned as is.
func Document(doc bson.M) bson.M {
	if len(doc) == 0 {
		return doc
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = idString(raw)
	}
	for k, v := range out {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.UTC().Format(time.RFC3339)
		case primitive.DateTime:
			out[k] = t.Time().UTC().Format(time.RFC3339)
		}
	}
	return out
}

// Documents maps Document over a slice, normalizing nil to an empty slice so
// JSON encoding yields [] rather than null.
func Documents(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, Document(d))
	}
	return out
}

func idString(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}
