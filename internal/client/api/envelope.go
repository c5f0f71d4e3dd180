package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nmorozs/quizadmin/internal/common"
)

// envelope is the backend's standard response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

var jsonNull = []byte("null")

// decodeObject unwraps a {data: {...}} envelope into a single value.
// An absent or null data field is an error here: object endpoints must
// produce a record, and silently treating nothing as something would hide
// data loss (common.ErrEmptyResponse).
func decodeObject[T any](body []byte) (*T, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, jsonNull) {
		return nil, common.ErrEmptyResponse
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decoding response data: %w", err)
	}
	return &out, nil
}

// decodeList unwraps a {data: [...]} envelope into a slice. Unlike
// decodeObject, an absent or null data field yields an empty slice: list
// endpoints are deliberately lenient so an empty backend answer reads as
// "nothing to show" rather than a failure.
func decodeList[T any](body []byte) ([]T, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, jsonNull) {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decoding response data: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
