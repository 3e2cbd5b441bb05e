package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/oelbekkali/colisops/models"
)

// decodeData decodes an enveloped single-object response. A missing or
// null data field is an error: object endpoints always carry a payload
// on success.
func decodeData[T any](body []byte) (T, error) {
	var out T

	var env models.APIResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return out, fmt.Errorf("%w: not an envelope: %v", ErrUnexpectedPayload, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, fmt.Errorf("%w: envelope without data", ErrUnexpectedPayload)
	}

	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}

	return out, nil
}

// decodeListData decodes an enveloped list response. A missing, null or
// empty data field normalizes to an empty slice; a data field of the
// wrong shape fails loudly.
func decodeListData[T any](body []byte) ([]T, error) {
	var env models.APIResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: not an envelope: %v", ErrUnexpectedPayload, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}
	if out == nil {
		out = []T{}
	}

	return out, nil
}

// decodeBare decodes an endpoint that returns its payload without an
// envelope (the delivery endpoints).
func decodeBare[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}
	return out, nil
}

// decodeBareList is decodeBare for list payloads, normalizing a null
// body to an empty slice.
func decodeBareList[T any](body []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
