// Package memory provides an in-memory store.Store used by tests and
// local development. Documents round-trip through bson so insert and
// query behave like the Mongo implementation, including the "_id" to
// "id" rename.
package memory

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"gymcoach/platform/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M // insertion order preserved
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memoryStore{collections: make(map[string][]bson.M)}
}

func (s *memoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	raw["_id"] = id

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], raw)
	s.mu.Unlock()

	return id.Hex(), nil
}

func (s *memoryStore) Query(_ context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []store.Document{}
	for _, raw := range s.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		docs = append(docs, store.RenameID(raw))
		if limit > 0 && int64(len(docs)) == limit {
			break
		}
	}
	return docs, nil
}

func (s *memoryStore) UpdateOne(_ context.Context, collection string, filter store.Filter, set store.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, raw := range s.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		for k, v := range set {
			raw[k] = v
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *memoryStore) CollectionNames(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *memoryStore) Ping(context.Context) error {
	return nil
}

// matches reports whether raw satisfies every equality constraint.
// The "id" key is checked against "_id", with the same hex validation
// the Mongo store applies.
func matches(raw bson.M, filter store.Filter) (bool, error) {
	for k, want := range filter {
		if k == "id" {
			hex, ok := want.(string)
			if !ok {
				return false, store.ErrInvalidID
			}
			oid, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				return false, store.ErrInvalidID
			}
			if raw["_id"] != oid {
				return false, nil
			}
			continue
		}
		if !valuesEqual(raw[k], want) {
			return false, nil
		}
	}
	return true, nil
}

// valuesEqual compares a stored value with a filter value, tolerating
// the integer width changes a bson round-trip introduces.
func valuesEqual(stored, want any) bool {
	if reflect.DeepEqual(stored, want) {
		return true
	}
	sf, sok := asFloat(stored)
	wf, wok := asFloat(want)
	return sok && wok && sf == wf
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
