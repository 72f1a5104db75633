package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type snapshot struct {
	Names []string
	Total int
}

func TestSaveAndLoadGob(t *testing.T) {
	// The nested path exercises directory creation.
	path := filepath.Join(t.TempDir(), "data", "catalog.gob")

	original := snapshot{Names: []string{"Pro Wireless Headphones", "UltraBook X1"}, Total: 2}
	if err := SaveGob(path, original); err != nil {
		t.Fatalf("SaveGob returned error: %v", err)
	}

	var restored snapshot
	if err := LoadGob(path, &restored); err != nil {
		t.Fatalf("LoadGob returned error: %v", err)
	}
	if !reflect.DeepEqual(restored, original) {
		t.Errorf("restored snapshot = %+v, want %+v", restored, original)
	}
}

func TestLoadGobMissingFile(t *testing.T) {
	err := LoadGob(filepath.Join(t.TempDir(), "missing.gob"), &snapshot{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadGob error = %v, want os.ErrNotExist", err)
	}
}
