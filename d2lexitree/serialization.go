package d2lexitree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/qntx/lexitrees/container"
)

// Predefined errors for JSON operations.
var (
	ErrMarshalJSONFailure   = errors.New("failed to marshal tree to JSON")
	ErrUnmarshalJSONFailure = errors.New("failed to unmarshal JSON into tree")
)

var (
	_ container.JSONCodec = (*Tree[string, int])(nil)
	_ json.Marshaler      = (*Tree[string, int])(nil)
	_ json.Unmarshaler    = (*Tree[string, int])(nil)
)

// ToJSON serializes the tree's key-value pairs into a JSON object. Time
// complexity: O(n).
func (t *Tree[K, V]) ToJSON() ([]byte, error) {
	elems := make(map[K]V, t.len)
	for k, v := range t.Iter() {
		elems[k] = v
	}

	data, err := json.Marshal(elems)
	if err != nil {
		return nil, fmt.Errorf("d2lexitree: %w: %w", ErrMarshalJSONFailure, err)
	}

	return data, nil
}

// FromJSON clears the tree and repopulates it from a JSON object. Time
// complexity: O(n log n).
func (t *Tree[K, V]) FromJSON(data []byte) error {
	var elems map[K]V
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("d2lexitree: %w: %w", ErrUnmarshalJSONFailure, err)
	}

	t.Clear()

	for k, v := range elems {
		t.Put(k, v)
	}

	return nil
}

// MarshalJSON implements json.Marshaler by delegating to ToJSON.
func (t *Tree[K, V]) MarshalJSON() ([]byte, error) {
	return t.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler by delegating to FromJSON.
func (t *Tree[K, V]) UnmarshalJSON(data []byte) error {
	return t.FromJSON(data)
}
