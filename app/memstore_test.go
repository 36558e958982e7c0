package app

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

// memStore keeps documents in a map, standing in for the sqlite store in
// tests.
type memStore struct {
	docs map[string]string
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]string)}
}

func (m *memStore) LoadDoc(key string, v any) (bool, error) {
	doc, ok := m.docs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(doc), v)
}

func (m *memStore) SaveDoc(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.docs[key] = string(b)
	return nil
}

func newTestApp(t *testing.T, today string) *App {
	t.Helper()
	a, err := New(newMemStore(), Options{Today: today, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}
