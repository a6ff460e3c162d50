// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// errNonFinite rejects NaN and infinities, which neither compare equal to
// themselves nor encode to JSON.
var errNonFinite = errors.New("number must be finite")

// normalizeValue deep-copies a decoded option value into canonical form so
// configurations decoded from YAML, JSON and TOML compare equal: integral
// numbers become int64, other numbers float64, maps map[string]any and
// sequences []any. Anything else is returned as-is. NaN and infinities are
// rejected.
func normalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool:
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return uintValue(uint64(t)), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return uintValue(t), nil
	case float32:
		return floatValue(float64(t))
	case float64:
		return floatValue(t)
	case json.Number:
		return numberValue(t)
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			nv, err := normalizeValue(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			nv, err := normalizeValue(val)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = nv
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	case map[string]string:
		out := make(map[string]any, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out, nil
	default:
		return t, nil
	}
}

func normalizeMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for k, val := range in {
		nv, err := normalizeValue(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

func uintValue(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

func floatValue(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNonFinite
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), nil
	}
	return f, nil
}

// numberValue canonicalizes a JSON number the way the YAML decoder types it:
// int64 when it fits, uint64 range next, float64 otherwise.
func numberValue(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return uintValue(u), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n.String(), err)
	}
	return floatValue(f)
}

// asMap reports whether v is a string-keyed mapping, normalizing it if so.
func asMap(v any) (map[string]any, bool) {
	switch v.(type) {
	case map[string]any, map[any]any, map[string]string:
	default:
		return nil, false
	}
	n, err := normalizeValue(v)
	if err != nil {
		return nil, false
	}
	m, ok := n.(map[string]any)
	return m, ok
}

// asList reports whether v is a sequence.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarString renders a scalar attribute value. Non-scalars report false.
func scalarString(v any) (string, bool) {
	n, err := normalizeValue(v)
	if err != nil {
		return "", false
	}
	switch t := n.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
