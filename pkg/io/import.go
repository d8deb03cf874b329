package io

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// optionFile is the document form of an option list. JSON and YAML also
// accept a bare array.
type optionFile struct {
	Options []wheel.Option `json:"options" yaml:"options" toml:"options"`
}

// ReadOptions decodes an option list from r and validates every entry.
//
// ReadOptions returns an INVALID_FORMAT error if the input does not decode,
// and an INVALID_OPTIONS error naming the first bad option otherwise. The
// returned slice is never nil. ReadOptions does not close r.
func ReadOptions(r io.Reader, f Format) ([]wheel.Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var opts []wheel.Option
	switch f {
	case FormatJSON:
		opts, err = decodeJSON(data)
	case FormatYAML:
		opts, err = decodeYAML(data)
	case FormatTOML:
		var doc optionFile
		_, err = toml.Decode(string(data), &doc)
		opts = doc.Options
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s options", f)
	}

	opts = wheel.CloneOptions(opts)
	if err := wheel.ValidateOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func decodeJSON(data []byte) ([]wheel.Option, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var opts []wheel.Option
		err := json.Unmarshal(trimmed, &opts)
		return opts, err
	}
	var doc optionFile
	err := json.Unmarshal(trimmed, &doc)
	return doc.Options, err
}

func decodeYAML(data []byte) ([]wheel.Option, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var opts []wheel.Option
		err := root.Decode(&opts)
		return opts, err
	}
	var doc optionFile
	err := root.Decode(&doc)
	return doc.Options, err
}

// ImportOptions reads an option file, choosing the decoder by extension.
func ImportOptions(path string) ([]wheel.Option, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "option file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	opts, err := ReadOptions(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ReadAppearance decodes a TOML appearance table. Missing keys keep their
// defaults; keys that fail validation are reported and keep their defaults
// too, so the returned appearance is always usable.
func ReadAppearance(r io.Reader) (wheel.Appearance, error) {
	a := wheel.DefaultAppearance()
	if _, err := toml.NewDecoder(r).Decode(&a); err != nil {
		return wheel.DefaultAppearance(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode appearance")
	}
	return a.Normalize(wheel.DefaultAppearance())
}

// ImportAppearance reads an appearance TOML file.
func ImportAppearance(path string) (wheel.Appearance, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return wheel.DefaultAppearance(), errors.Wrap(errors.ErrCodeFileNotFound, err, "appearance file %s", path)
	}
	if err != nil {
		return wheel.DefaultAppearance(), fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return ReadAppearance(file)
}
