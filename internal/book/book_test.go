package book

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBook(t *testing.T, codes []uint32, vals []int8) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opening_database.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	for i, c := range codes {
		var row [entrySize]byte
		binary.BigEndian.PutUint32(row[:4], c)
		row[4] = byte(vals[i])
		if _, err := f.Write(row[:]); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return path
}

func TestLoadAndGetHitsAndMisses(t *testing.T) {
	codes := []uint32{10, 20, 30, 40, 50, 60, 70}
	vals := []int8{1, -2, 3, 0, -5, 6, -7}
	path := writeBook(t, codes, vals)

	b, err := Load(path, WithNumPositions(len(codes)), WithDepth(3))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", b.Depth())
	}

	for i, c := range codes {
		v, ok := b.Get(c)
		if !ok {
			t.Fatalf("Get(%d): expected hit", c)
		}
		if v != vals[i] {
			t.Fatalf("Get(%d) = %d, want %d", c, v, vals[i])
		}
	}

	for _, miss := range []uint32{0, 5, 15, 35, 65, 1000} {
		if _, ok := b.Get(miss); ok {
			t.Fatalf("Get(%d): expected miss", miss)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.bin"))
	var missing *Missing
	if !errors.As(err, &missing) {
		t.Fatalf("Load on missing file: got %v, want *Missing", err)
	}
}

func TestLoadCorruptSize(t *testing.T) {
	path := writeBook(t, []uint32{1, 2, 3}, []int8{0, 0, 0})

	_, err := Load(path, WithNumPositions(10))
	var corrupt *Corrupt
	if !errors.As(err, &corrupt) {
		t.Fatalf("Load on truncated file: got %v, want *Corrupt", err)
	}
}
