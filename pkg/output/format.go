// Package output writes rendered images to files and streams.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for an image format name or file extension
// that has no encoder.
var ErrUnknownFormat = errors.New("output: unknown format")

// Format names an image encoding.
type Format string

const (
	PNG  Format = "png"
	GIF  Format = "gif"
	TIFF Format = "tiff"
	BMP  Format = "bmp"
	JPEG Format = "jpeg"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{PNG, GIF, TIFF, BMP, JPEG}
}

var aliases = map[string]Format{
	"png":  PNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
	"jpg":  JPEG,
	"jpeg": JPEG,
}

// ParseFormat accepts a format name or a common alias such as "jpg".
func ParseFormat(s string) (Format, error) {
	f, ok := aliases[strings.ToLower(strings.TrimPrefix(s, "."))]
	if !ok {
		return "", fmt.Errorf("%w %q, want one of %s", ErrUnknownFormat, s, formatList())
	}
	return f, nil
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Ext is the file extension written for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// String, Set and Type make *Format usable as a command line flag value.
func (f *Format) String() string { return string(*f) }
func (f *Format) Type() string   { return "format" }

func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
