package cmd

import (
	"os"
	"testing"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.Use != "myst" {
		t.Fatalf("expected Use=myst, got %q", rootCmd.Use)
	}
	if rootCmd.Version != Version {
		t.Fatalf("expected Version=%q, got %q", Version, rootCmd.Version)
	}
}

func TestReadSourceInline(t *testing.T) {
	input, filename, err := readSource("1 + 2", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input != "1 + 2" || filename != "<eval>" {
		t.Fatalf("unexpected result: %q %q", input, filename)
	}
}

func TestReadSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/script.myst"
	if err := os.WriteFile(path, []byte("1 + 2"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	input, filename, err := readSource("", []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input != "1 + 2" || filename != path {
		t.Fatalf("unexpected result: %q %q", input, filename)
	}
}

func TestReadSourceMissingInputIsAnError(t *testing.T) {
	if _, _, err := readSource("", nil); err == nil {
		t.Fatal("expected an error when neither -e nor a file is given")
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	if _, _, err := readSource("", []string{"/nonexistent/path.myst"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
