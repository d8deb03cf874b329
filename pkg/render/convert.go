package render

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/dialoguewheel/pkg/errors"
)

// Converter is the external program used by [ToPDF] and [ToPNG].
var Converter = "rsvg-convert"

const installHint = "install librsvg (brew install librsvg, apt install librsvg2-bin)"

// ToPDF converts SVG bytes to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG. A scale of 2.0 doubles the SVG's size.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", scale)
	}
	return convert(svg, "png", "-z", strconv.FormatFloat(scale, 'f', 2, 64))
}

// Available reports whether the converter is on PATH.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if len(svg) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s conversion: empty svg", format)
	}
	if !Available() {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s export needs %s: %s", format, Converter, installHint)
	}

	cmd := exec.Command(Converter, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", Converter, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
