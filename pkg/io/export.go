package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// WriteOptions encodes opts to w. JSON and YAML are written as a bare array,
// TOML as an [[options]] table array. The output reads back with
// [ReadOptions].
func WriteOptions(w io.Writer, opts []wheel.Option, f Format) error {
	opts = wheel.CloneOptions(opts)
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(opts)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(opts)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(optionFile{Options: opts})
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q", f)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportOptions writes opts to path, choosing the encoder by extension.
func ExportOptions(opts []wheel.Option, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return WriteOptions(file, opts, f)
}

// WriteAppearance encodes a as a TOML table.
func WriteAppearance(w io.Writer, a wheel.Appearance) error {
	if err := toml.NewEncoder(w).Encode(a); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
