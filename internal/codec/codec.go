// Package codec serializes domain records to and from the JSON blobs kept
// under a single key-value entry. Collections are stored as JSON arrays;
// the current-session slot is stored as a single JSON object.
//
// An absent blob decodes to an empty collection (or nil record). A blob
// that exists but cannot be parsed fails with common.ErrCorruptData; the
// policy for handling that (fatal vs. reset-to-empty) belongs to the caller.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/unicaronas/unicaronas/internal/common"
)

// DecodeCollection parses blob as a JSON array of records.
// A nil or empty blob yields an empty slice.
func DecodeCollection[T any](blob []byte) ([]T, error) {
	if len(blob) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w: %v", common.ErrCorruptData, err)
	}
	if records == nil {
		// blob was the JSON literal "null"
		records = []T{}
	}
	return records, nil
}

// EncodeCollection serializes records as a JSON array. A nil slice encodes
// as an empty array so that the round-trip stays stable.
func EncodeCollection[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return blob, nil
}

// DecodeRecord parses blob as a single JSON record.
// A nil or empty blob yields nil (record absent).
func DecodeRecord[T any](blob []byte) (*T, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	record := new(T)
	if err := json.Unmarshal(blob, record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w: %v", common.ErrCorruptData, err)
	}
	return record, nil
}

// EncodeRecord serializes a single record as a JSON object.
func EncodeRecord[T any](record T) ([]byte, error) {
	blob, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return blob, nil
}
