// Package migrate rewrites stored legacy values (markup with inline <style>
// elements) into JSON envelopes.
package migrate

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/store"
)

// Change is a pending rewrite of one stored value.
type Change struct {
	ObjectID string
	FieldKey string
	Before   string
	After    string
}

// Plan lists the records of objectID (every record when empty) whose value is
// not yet an envelope.
func Plan(ctx context.Context, st store.Store, objectID string) ([]Change, error) {
	records, err := st.List(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("migrate: list: %w", err)
	}
	var changes []Change
	for _, record := range records {
		after, changed := codec.Migrate(record.Value)
		if !changed {
			continue
		}
		changes = append(changes, Change{
			ObjectID: record.ObjectID,
			FieldKey: record.FieldKey,
			Before:   record.Value,
			After:    after,
		})
	}
	return changes, nil
}

// Apply writes every change and returns how many were stored before the first
// failure.
func Apply(ctx context.Context, st store.Store, changes []Change) (int, error) {
	for i, change := range changes {
		if _, err := st.Put(ctx, change.ObjectID, change.FieldKey, change.After); err != nil {
			return i, fmt.Errorf("migrate: put %s/%s: %w", change.ObjectID, change.FieldKey, err)
		}
	}
	return len(changes), nil
}
