// Package jsonutil provides shared helpers for reading and writing the JSON
// fixture documents: error context wrapping and indented file output.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ReadFile reads the JSON document at path into v. Errors name the file.
func ReadFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return UnmarshalWithContext(data, v, filepath.Base(path))
}

// ReadFileIfExists is ReadFile but reports (false, nil) when path does not exist.
func ReadFileIfExists(path string, v interface{}) (bool, error) {
	if err := ReadFile(path, v); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Marshal encodes v as two-space indented JSON with a trailing newline.
// HTML characters are not escaped, so course text round-trips verbatim.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes v to path as indented JSON, creating parent directories.
func WriteFile(path string, v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
