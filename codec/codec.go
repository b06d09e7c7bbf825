package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scanpath/axis"
	"github.com/katalvlaran/scanpath/compound"
	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/excluder"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/roi"
)

// ErrNotScan is returned by LoadScan when a document describes something
// other than a generator.
var ErrNotScan = errors.New("codec: document is not a generator")

// ErrUnknownFormat is returned for a file extension other than .json,
// .yaml or .yml.
var ErrUnknownFormat = errors.New("codec: unknown document format")

// Describer is anything with a serialized record.
type Describer interface {
	ToDict() core.Dict
}

var (
	axisIDs     = set(axis.TypeIDs())
	roiIDs      = set(roi.TypeIDs())
	mutatorIDs  = set(mutator.TypeIDs())
	excluderIDs = set([]string{excluder.TypeID})
)

func set(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// Decode rebuilds whatever d describes. The concrete result is an
// axis.Generator, *compound.Generator, roi.ROI, *excluder.Excluder or
// mutator.Mutator. Unregistered typeids wrap core.ErrUnknownTypeID.
func Decode(d core.Dict) (Describer, error) {
	id, err := d.TypeID()
	if err != nil {
		return nil, fmt.Errorf("codec.Decode: %w", err)
	}
	if id == compound.TypeID {
		g, err := compound.FromDict(d)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	if _, ok := axisIDs[id]; ok {
		return axis.FromDict(d)
	}
	if _, ok := roiIDs[id]; ok {
		return roi.FromDict(d)
	}
	if _, ok := excluderIDs[id]; ok {
		e, err := excluder.FromDict(d)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	if _, ok := mutatorIDs[id]; ok {
		return mutator.FromDict(d)
	}
	return nil, fmt.Errorf("codec.Decode: %q: %w", id, core.ErrUnknownTypeID)
}

// TypeIDs lists every typeid Decode understands.
func TypeIDs() []string {
	ids := []string{compound.TypeID, excluder.TypeID}
	ids = append(ids, axis.TypeIDs()...)
	ids = append(ids, roi.TypeIDs()...)
	ids = append(ids, mutator.TypeIDs()...)
	return ids
}

// MarshalJSON renders v as an indented JSON document.
func MarshalJSON(v Describer) ([]byte, error) {
	data, err := json.MarshalIndent(v.ToDict(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// UnmarshalJSON decodes a JSON document into its object. Numbers are kept
// as json.Number so integers beyond 2^53 (seeds) survive exactly.
func UnmarshalJSON(data []byte) (Describer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var d core.Dict
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return Decode(d)
}

// MarshalYAML renders v as a YAML document.
func MarshalYAML(v Describer) ([]byte, error) {
	data, err := yaml.Marshal(map[string]any(v.ToDict()))
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// UnmarshalYAML decodes a YAML document into its object. JSON is valid
// YAML, so either format is accepted.
func UnmarshalYAML(data []byte) (Describer, error) {
	var d map[string]any
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Decode(core.Dict(d))
}

// LoadScan decodes a JSON or YAML document describing a generator. A single
// axis generator is wrapped into a one-dimensional compound. The result is
// not prepared.
func LoadScan(data []byte, opts ...compound.Option) (*compound.Generator, error) {
	var d map[string]any
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("codec.LoadScan: %w", err)
	}
	rec := core.Dict(d)
	id, err := rec.TypeID()
	if err != nil {
		return nil, fmt.Errorf("codec.LoadScan: %w", err)
	}
	if id == compound.TypeID {
		return compound.FromDict(rec, opts...)
	}
	if _, ok := axisIDs[id]; !ok {
		return nil, fmt.Errorf("codec.LoadScan: %q: %w", id, ErrNotScan)
	}
	g, err := axis.FromDict(rec)
	if err != nil {
		return nil, err
	}
	return compound.New([]compound.Dimension{g}, nil, nil, opts...)
}

// SaveFile writes v to path, choosing JSON or YAML from the extension.
func SaveFile(path string, v Describer) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "json":
		data, err = MarshalJSON(v)
	case "yaml":
		data, err = MarshalYAML(v)
	default:
		return fmt.Errorf("codec.SaveFile(%s): %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (Describer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	switch format(path) {
	case "json":
		return UnmarshalJSON(data)
	case "yaml":
		return UnmarshalYAML(data)
	}
	return nil, fmt.Errorf("codec.LoadFile(%s): %w", path, ErrUnknownFormat)
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
