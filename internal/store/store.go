package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. One collection per entity kind.
const (
	Users        = "user"
	WorkoutPlans = "workoutplan"
	MealPlans    = "mealplan"
	Messages     = "message"
	DailyLogs    = "dailylog"
)

// Error constants for the store layer
var (
	ErrNotFound    = StoreError("not found")
	ErrInvalidID   = StoreError("invalid ID format")
	ErrUnavailable = StoreError("storage unavailable")
)

// StoreError helps distinguish store errors
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// Document is the generic field-mapping form a stored record takes on
// its way in and out of the store. Documents handed to callers always
// carry their identifier under the plain "id" key.
type Document map[string]any

// Filter is a set of field→value equality constraints. The "id" key
// addresses the store-native identifier.
type Filter map[string]any

// Store is the gateway to the document store. Implementations exist
// for MongoDB, for an in-memory fake used in tests, and for the
// degraded no-connection state.
type Store interface {
	// Insert persists doc into the named collection and returns the
	// generated identifier as a hex string.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Query returns documents matching every filter constraint, in
	// store-native order, truncated to limit when limit > 0.
	Query(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)

	// UpdateOne sets the given fields on the first document matching
	// the filter. Returns ErrNotFound when nothing matches.
	UpdateOne(ctx context.Context, collection string, filter Filter, set Filter) error

	// CollectionNames lists the collections currently present.
	CollectionNames(ctx context.Context) ([]string, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}

// RenameID converts a raw stored record into the caller-facing form:
// the store-native "_id" field is dropped and re-exposed as a plain
// "id" string. This is the single place that rename happens.
func RenameID(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	switch id := raw["_id"].(type) {
	case primitive.ObjectID:
		doc["id"] = id.Hex()
	case string:
		doc["id"] = id
	}
	return doc
}

// Decode converts a Document back into a typed entity via the bson
// serialization boundary.
func Decode(doc Document, v any) error {
	data, err := bson.Marshal(bson.M(doc))
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, v)
}

// Unavailable is the Store used when no database connection was ever
// established. Every operation fails with ErrUnavailable so endpoints
// degrade per request instead of the process refusing to start.
type Unavailable struct{}

func (Unavailable) Insert(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Query(context.Context, string, Filter, int64) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) UpdateOne(context.Context, string, Filter, Filter) error {
	return ErrUnavailable
}

func (Unavailable) CollectionNames(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Ping(context.Context) error {
	return ErrUnavailable
}
