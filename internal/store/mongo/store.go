package mongo

import (
	"context"
	"errors"
	"time"

	"gymcoach/platform/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection actually works;
	// Connect alone does not guarantee a reachable server.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// mongoStore implements store.Store on top of a *mongo.Database.
type mongoStore struct {
	db *mongo.Database
}

// New creates a store.Store backed by the given database.
func New(db *mongo.Database) store.Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("failed to convert inserted ID")
	}
	return insertedID.Hex(), nil
}

func (s *mongoStore) Query(ctx context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	mongoFilter, err := translateFilter(filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, mongoFilter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]store.Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, store.RenameID(r))
	}
	return docs, nil
}

func (s *mongoStore) UpdateOne(ctx context.Context, collection string, filter store.Filter, set store.Filter) error {
	mongoFilter, err := translateFilter(filter)
	if err != nil {
		return err
	}

	result, err := s.db.Collection(collection).UpdateOne(ctx, mongoFilter, bson.M{"$set": bson.M(set)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// translateFilter maps the gateway's Filter into a Mongo filter
// document. The "id" key addresses "_id" and must hold a valid hex
// ObjectID; anything else fails with store.ErrInvalidID.
func translateFilter(filter store.Filter) (bson.M, error) {
	out := bson.M{}
	for k, v := range filter {
		if k != "id" {
			out[k] = v
			continue
		}
		hex, ok := v.(string)
		if !ok {
			return nil, store.ErrInvalidID
		}
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, store.ErrInvalidID
		}
		out["_id"] = oid
	}
	return out, nil
}

// EnsureIndexes creates the indexes the service relies on. Call once
// during startup; failures are reported, not fatal.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "trainer_id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	if _, err := db.Collection(store.Users).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	planIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "trainer_id", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
	}
	for _, coll := range []string{store.WorkoutPlans, store.MealPlans} {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, planIndexes); err != nil {
			return err
		}
	}

	if _, err := db.Collection(store.Messages).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "conversation_id", Value: 1}},
	}); err != nil {
		return err
	}

	_, err := db.Collection(store.DailyLogs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}},
	})
	return err
}
