package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader handles deserialization of reference tables and configuration
// from files or arbitrary readers.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader with the specified format and input source.
func NewReader(format Format, input io.Reader) *Reader {
	return &Reader{
		format: format,
		input:  input,
	}
}

// NewFileReader creates a Reader for the given file path with an explicit
// format. Call Close on the returned Reader to release the file handle.
func NewFileReader(format Format, path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	r := NewReader(format, file)
	r.closer = file
	return r, nil
}

// NewFileReaderAuto creates a Reader for the given file path, detecting the
// format from the file extension.
func NewFileReaderAuto(path string) (*Reader, error) {
	return NewFileReader(FormatFromPath(path), path)
}

// FormatFromPath infers a serialization format from a file extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatJSON
	}
}

// Deserialize reads and decodes the input into the target. The target must
// be a non-nil pointer.
func (r *Reader) Deserialize(_ context.Context, target any) error {
	if target == nil {
		return fmt.Errorf("deserialization target must not be nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(target); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(target); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported input format: %s", r.format)
	}
}

// Close releases any resources associated with the Reader. Safe to call
// multiple times.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// FromFile reads and decodes a single file into a value of type T,
// detecting the format from the file extension.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	reader, err := NewFileReaderAuto(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var out T
	if err := reader.Deserialize(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
