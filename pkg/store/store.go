// Package store persists visual editor values per object and field. It stands
// in for the host's own meta storage: values are stored verbatim and replaced
// wholesale on every save.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrNotFound is returned when no value is stored for an object field.
var ErrNotFound = errors.New("store: record not found")

// Record is one stored field value.
type Record struct {
	ObjectID  string    `json:"object_id"`
	FieldKey  string    `json:"field_key"`
	Value     string    `json:"value"`
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store reads and writes field values.
type Store interface {
	Get(ctx context.Context, objectID, fieldKey string) (Record, error)
	// Put replaces the stored value and assigns a new revision.
	Put(ctx context.Context, objectID, fieldKey, value string) (Record, error)
	// List returns the records of objectID ordered by field key, or every
	// record ordered by object and field when objectID is empty.
	List(ctx context.Context, objectID string) ([]Record, error)
	Close() error
}

func newRevision() string {
	return ulid.Make().String()
}

func validateKey(objectID, fieldKey string) (string, string, error) {
	objectID = strings.TrimSpace(objectID)
	fieldKey = strings.TrimSpace(fieldKey)
	if objectID == "" || fieldKey == "" {
		return "", "", errors.New("store: object id and field key are required")
	}
	return objectID, fieldKey, nil
}
