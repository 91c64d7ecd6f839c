package cart

import (
	"encoding/json"
	"fmt"
)

// DocumentVersion is the version written by Marshal.
const DocumentVersion = 1

type document struct {
	Version int `json:"version"`
	State
}

// Marshal serializes a state into the persisted document format.
func Marshal(s State) ([]byte, error) {
	doc := document{Version: DocumentVersion, State: s}
	if doc.Items == nil {
		doc.Items = []LineItem{}
	}
	if doc.RemovalHistory == nil {
		doc.RemovalHistory = []RemovalEntry{}
	}
	return json.Marshal(doc)
}

// Unmarshal parses a document written by Marshal.
func Unmarshal(data []byte) (State, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, fmt.Errorf("cart: decode document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return doc.State, nil
}
