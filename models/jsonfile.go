package models

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// loadJSONArray decodes the array at path into out.
// It reports whether the file existed, and the decode error if any.
func loadJSONArray(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return true, err
	}
	return true, json.Unmarshal(data, out)
}

// saveJSONArray overwrites path with v, indented, non-ASCII kept as is.
// There is no temp file and rename: a crash mid-write can truncate the file.
func saveJSONArray(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return &PersistenceError{Op: "encode", Path: path, Err: err}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func nopIfNil(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
