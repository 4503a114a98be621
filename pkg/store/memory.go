package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryKey struct {
	object string
	field  string
}

// Memory keeps records in a map. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records map[memoryKey]Record
	now     func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[memoryKey]Record),
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, objectID, fieldKey string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	objectID, fieldKey, err := validateKey(objectID, fieldKey)
	if err != nil {
		return Record{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[memoryKey{objectID, fieldKey}]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, objectID, fieldKey)
	}
	return record, nil
}

func (m *Memory) Put(ctx context.Context, objectID, fieldKey, value string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	objectID, fieldKey, err := validateKey(objectID, fieldKey)
	if err != nil {
		return Record{}, err
	}
	record := Record{
		ObjectID:  objectID,
		FieldKey:  fieldKey,
		Value:     value,
		Revision:  newRevision(),
		UpdatedAt: m.now().UTC(),
	}
	m.mu.Lock()
	m.records[memoryKey{objectID, fieldKey}] = record
	m.mu.Unlock()
	return record, nil
}

func (m *Memory) List(ctx context.Context, objectID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objectID = strings.TrimSpace(objectID)

	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for key, record := range m.records {
		if objectID != "" && key.object != objectID {
			continue
		}
		out = append(out, record)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ObjectID != out[j].ObjectID {
			return out[i].ObjectID < out[j].ObjectID
		}
		return out[i].FieldKey < out[j].FieldKey
	})
	return out, nil
}

func (m *Memory) Close() error { return nil }
