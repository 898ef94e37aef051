package boolidx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDictionaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.json")

	if err := os.WriteFile(path, []byte(`[[1,2,3],{"bill":[0,5],"gates":[6,3]}]`), 0o644); err != nil {
		t.Fatalf("writing fixture dictionary: %v", err)
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if !sameInts(dict.AllDocs, []int{1, 2, 3}) {
		t.Errorf("AllDocs = %v, want [1 2 3]", dict.AllDocs)
	}

	offset, length, ok := dict.Lookup("bill")
	if !ok || offset != 0 || length != 5 {
		t.Errorf("Lookup(bill) = (%d, %d, %v), want (0, 5, true)", offset, length, ok)
	}

	if _, _, ok := dict.Lookup("nonexistent"); ok {
		t.Errorf("Lookup(nonexistent) ok = true, want false")
	}
}

func TestLoadDictionaryCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.json")

	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("writing fixture dictionary: %v", err)
	}

	if _, err := LoadDictionary(path); err == nil {
		t.Fatal("LoadDictionary: expected error for corrupt dictionary")
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := LoadDictionary("/nonexistent/path/dict.json"); err == nil {
		t.Fatal("LoadDictionary: expected error for missing file")
	}
}
