// SPDX-License-Identifier: MIT
// Package: scanpath/core
//
// dict.go — the serialized record shape and its typed accessors.
//
// Contract:
//   - ToDict implementations emit canonical Go types only:
//     string, bool, int, float64, []string, []float64, [][]float64,
//     map[string]float64, Dict and []Dict.
//   - Accessors additionally accept the loose shapes produced by JSON/YAML
//     decoding ([]any, map[string]any, float64 or json.Number for integers,
//     int for floats) and convert them to the canonical type through
//     github.com/spf13/cast. Decoding a document and calling ToDict again
//     therefore reproduces the original Dict exactly.
//   - Numbers are never read from strings, bools or nulls, and an integer
//     field rejects a fractional value instead of truncating it.
//   - Every failure wraps ErrMissingField or ErrFieldType with the key.

package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// TypeIDKey is the key under which every record stores its type identifier.
const TypeIDKey = "typeid"

// Dict is a keyed record describing one generator, ROI, excluder or mutator.
type Dict map[string]any

// TypeID returns the record's "typeid" entry.
func (d Dict) TypeID() (string, error) {
	return d.String(TypeIDKey)
}

// Has reports whether key is present.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// String returns key as a string.
func (d Dict) String(key string) (string, error) {
	v, ok := d[key]
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q: want string, got %T: %w", key, v, ErrFieldType)
	}
	return s, nil
}

// Bool returns key as a bool.
func (d Dict) Bool(key string) (bool, error) {
	v, ok := d[key]
	if !ok {
		return false, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%q: want bool, got %T: %w", key, v, ErrFieldType)
	}
	return b, nil
}

// BoolOr returns key as a bool, or def when key is absent.
func (d Dict) BoolOr(key string, def bool) (bool, error) {
	if !d.Has(key) {
		return def, nil
	}
	return d.Bool(key)
}

// Float returns key as a float64. Any Go integer type and json.Number are
// accepted.
func (d Dict) Float(key string) (float64, error) {
	v, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%q: want number, got %T: %w", key, v, ErrFieldType)
	}
	return f, nil
}

// FloatOr returns key as a float64, or def when key is absent.
func (d Dict) FloatOr(key string, def float64) (float64, error) {
	if !d.Has(key) {
		return def, nil
	}
	return d.Float(key)
}

// Int returns key as an int. Floats are accepted only when integral.
func (d Dict) Int(key string) (int, error) {
	v, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	n, err := toInt64(v)
	if err != nil || n > math.MaxInt || n < math.MinInt {
		return 0, fmt.Errorf("%q: want integer, got %T(%v): %w", key, v, v, ErrFieldType)
	}
	return int(n), nil
}

// Int64 returns key as an int64 (seeds).
func (d Dict) Int64(key string) (int64, error) {
	v, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	n, err := toInt64(v)
	if err != nil {
		return 0, fmt.Errorf("%q: want integer, got %T(%v): %w", key, v, v, ErrFieldType)
	}
	return n, nil
}

// Floats returns key as a []float64.
func (d Dict) Floats(key string) ([]float64, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	out, err := toFloats(v)
	if err != nil {
		return nil, fmt.Errorf("%q: want list of numbers, got %T: %w", key, v, ErrFieldType)
	}
	return out, nil
}

// FloatMatrix returns key as a [][]float64.
func (d Dict) FloatMatrix(key string) ([][]float64, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	if t, ok := v.([][]float64); ok {
		out := make([][]float64, len(t))
		for i := range t {
			out[i] = append([]float64(nil), t[i]...)
		}
		return out, nil
	}
	rows, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("%q: want list of lists, got %T: %w", key, v, ErrFieldType)
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if out[i], err = toFloats(row); err != nil {
			return nil, fmt.Errorf("%q[%d]: want list of numbers, got %T: %w", key, i, row, ErrFieldType)
		}
	}
	return out, nil
}

// Strings returns key as a []string. Every element must be a string.
func (d Dict) Strings(key string) ([]string, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	if t, ok := v.([]string); ok {
		return append([]string(nil), t...), nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("%q: want list of strings, got %T: %w", key, v, ErrFieldType)
	}
	for i, e := range items {
		if _, ok := e.(string); !ok {
			return nil, fmt.Errorf("%q[%d]: want string, got %T: %w", key, i, e, ErrFieldType)
		}
	}
	return cast.ToStringSliceE(items)
}

// FloatMap returns key as a map[string]float64.
func (d Dict) FloatMap(key string) (map[string]float64, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	if t, ok := v.(map[string]float64); ok {
		out := make(map[string]float64, len(t))
		for k, f := range t {
			out[k] = f
		}
		return out, nil
	}
	m, ok := AsDict(v)
	if !ok {
		return nil, fmt.Errorf("%q: want mapping of numbers, got %T: %w", key, v, ErrFieldType)
	}
	out := make(map[string]float64, len(m))
	for k, e := range m {
		f, err := toFloat(e)
		if err != nil {
			return nil, fmt.Errorf("%q[%q]: want number, got %T: %w", key, k, e, ErrFieldType)
		}
		out[k] = f
	}
	return out, nil
}

// Dict returns key as a nested record.
func (d Dict) Dict(key string) (Dict, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	r, ok := AsDict(v)
	if !ok {
		return nil, fmt.Errorf("%q: want record, got %T: %w", key, v, ErrFieldType)
	}
	return r, nil
}

// Dicts returns key as a list of nested records.
func (d Dict) Dicts(key string) ([]Dict, error) {
	v, ok := d[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	if t, ok := v.([]Dict); ok {
		return append([]Dict(nil), t...), nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("%q: want list of records, got %T: %w", key, v, ErrFieldType)
	}
	out := make([]Dict, len(items))
	for i, e := range items {
		r, ok := AsDict(e)
		if !ok {
			return nil, fmt.Errorf("%q[%d]: want record, got %T: %w", key, i, e, ErrFieldType)
		}
		out[i] = r
	}
	return out, nil
}

// AsDict converts a decoded mapping (map[string]any, or map[any]any with
// string keys) into a Dict.
func AsDict(v any) (Dict, bool) {
	switch t := v.(type) {
	case Dict:
		return t, true
	case nil, string:
		return nil, false
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, false
	}
	return Dict(m), true
}

var errNotNumber = errors.New("not a number")

// numeric rejects the values cast would otherwise coerce to a number.
func numeric(v any) error {
	switch v.(type) {
	case nil, bool, string:
		return errNotNumber
	}
	return nil
}

func toFloat(v any) (float64, error) {
	if err := numeric(v); err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// toInt64 accepts integers, integral floats within float64's exact range,
// and json.Number.
func toInt64(v any) (int64, error) {
	if err := numeric(v); err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float32:
		v = float64(t)
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, errNotNumber
		}
	case uint64:
		if t > math.MaxInt64 {
			return 0, errNotNumber
		}
	}
	if f, ok := v.(float64); ok && (f != math.Trunc(f) || math.Abs(f) > 1<<53) {
		return 0, errNotNumber
	}
	return cast.ToInt64E(v)
}

func toFloats(v any) ([]float64, error) {
	if t, ok := v.([]float64); ok {
		return append([]float64(nil), t...), nil
	}
	if items, ok := v.([]any); ok {
		out := make([]float64, len(items))
		for i, e := range items {
			f, err := toFloat(e)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	}
	return cast.ToFloat64SliceE(v)
}
