package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"rentx-client/internal/domain"
)

// ErrUnrecognizedShape reports a list payload that matched none of the
// accepted response shapes.
var ErrUnrecognizedShape = errors.New("unrecognized response shape")

// envelopeKeys are the wrapper keys list endpoints are known to use,
// in the order they are checked.
var envelopeKeys = []string{"data", "content"}

// decodeList normalizes a list payload into a flat slice. Accepted shapes:
// a bare array, {"data":[...]}, {"content":[...]}, or {"<resource>":[...]}.
// One rule per shape, selected by structural inspection; anything else is
// ErrUnrecognizedShape rather than a best-effort guess.
func decodeList[T any](data []byte, resourceKey string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("failed to decode %s list: %w", resourceKey, err)
		}
		return out, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedShape, firstBytes(trimmed))
	}

	for _, key := range append(envelopeKeys, resourceKey) {
		raw, ok := envelope[key]
		if !ok || !isArray(raw) {
			continue
		}
		var out []T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("failed to decode %q envelope: %w", key, err)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedShape, firstBytes(trimmed))
}

// decodeVehicles handles the vehicle-specific shapes on top of decodeList:
// a {"cars":[...],"bikes":[...]} split gets flattened and type-tagged.
func decodeVehicles(data []byte) ([]domain.Vehicle, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedShape, firstBytes(trimmed))
		}
		if _, hasCars := envelope["cars"]; hasCars {
			if _, hasBikes := envelope["bikes"]; hasBikes {
				var split struct {
					Cars  []domain.Vehicle `json:"cars"`
					Bikes []domain.Vehicle `json:"bikes"`
				}
				if err := json.Unmarshal(trimmed, &split); err != nil {
					return nil, fmt.Errorf("failed to decode cars/bikes split: %w", err)
				}
				out := make([]domain.Vehicle, 0, len(split.Cars)+len(split.Bikes))
				for _, v := range split.Cars {
					v.Type = domain.VehicleTypeCar
					out = append(out, v)
				}
				for _, v := range split.Bikes {
					v.Type = domain.VehicleTypeBike
					out = append(out, v)
				}
				return out, nil
			}
		}
	}
	return decodeList[domain.Vehicle](trimmed, "vehicles")
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func firstBytes(data []byte) string {
	const max = 80
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
