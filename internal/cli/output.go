package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// defaultBase names outputs when the source has no input file (e.g. --demo).
const defaultBase = "wheel"

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // source file, used to derive output names
	output    string // -o value
	suffix    string // appended to derived names, e.g. "_states"
	cacheHit  bool
}

// outputPaths maps each format to its destination. A single format goes to
// -o verbatim; several formats share a base path and differ by extension.
func outputPaths(p artifactWriteParams) (map[string]string, error) {
	paths := make(map[string]string, len(p.formats))
	if len(p.formats) == 1 && p.output != "" {
		paths[p.formats[0]] = p.output
		return paths, nil
	}
	if p.output == stdoutPath {
		return nil, fmt.Errorf("cannot write %d formats to stdout", len(p.formats))
	}
	base := basePath(p.output, p.input) + p.suffix
	for _, f := range p.formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// basePath strips a known format extension from output, or derives the base
// from input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if slices.Contains(knownExtensions, ext) {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

var knownExtensions = []string{"svg", "html", "png", "pdf", "json", "dot"}

func writeArtifacts(p artifactWriteParams) error {
	paths, err := outputPaths(p)
	if err != nil {
		return err
	}
	for _, f := range p.formats {
		path := paths[f]
		if err := writeFile(path, p.artifacts[f]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if path != stdoutPath {
			printFile(path)
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
