package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistsInDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ok, err := ExistsInDir(dir, "a.txt")
	if err != nil || !ok {
		t.Errorf("ExistsInDir(a.txt) = %v, %v, want true", ok, err)
	}
	ok, err = ExistsInDir(dir, "b.txt")
	if err != nil || ok {
		t.Errorf("ExistsInDir(b.txt) = %v, %v, want false", ok, err)
	}
	if _, err := ExistsInDir(filepath.Join(dir, "nosuch"), "a.txt"); err == nil {
		t.Error("ExistsInDir on missing dir succeeded")
	}
}

func TestIsDirAndSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(file, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	if !IsDir(dir) {
		t.Error("IsDir(tempdir) = false")
	}
	if IsDir(file) {
		t.Error("IsDir(file) = true")
	}
	if IsDir(filepath.Join(dir, "nosuch")) {
		t.Error("IsDir(missing) = true")
	}

	n, err := Size(file)
	if err != nil || n != 5 {
		t.Errorf("Size = %d, %v, want 5", n, err)
	}
	if _, err := Size(filepath.Join(dir, "nosuch")); err == nil {
		t.Error("Size on missing file succeeded")
	}
}
