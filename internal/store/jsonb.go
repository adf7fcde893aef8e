// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound marks batch operations that referenced a missing row.
var ErrNotFound = errors.New("not found")

// encodeJSON marshals a value for a jsonb column parameter. A nil string
// slice encodes as an empty array rather than null.
func encodeJSON(v any) ([]byte, error) {
	if s, ok := v.([]string); ok && s == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return b, nil
}

// decodeStrings unmarshals a jsonb string array column. Null and empty
// input decode to an empty slice so the field always serializes as [].
func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode jsonb array: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
