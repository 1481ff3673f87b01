package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Run("writes bytes to target path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tone.wav")
		want := []byte("RIFF fake payload")

		if err := WriteFile(path, want); err != nil {
			t.Fatalf("WriteFile returned error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("file content mismatch: got %d bytes, want %d", len(got), len(want))
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tone.wav")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		if err := WriteFile(path, []byte("new content")); err != nil {
			t.Fatalf("WriteFile returned error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "new content" {
			t.Fatalf("file content = %q, want %q", string(got), "new content")
		}
	})

	t.Run("missing directory fails and leaves nothing behind", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "tone.wav")

		if err := WriteFile(path, []byte("payload")); err == nil {
			t.Fatal("expected error for missing directory")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Fatalf("expected no file at target, stat err = %v", err)
		}
	})

	t.Run("leaves no temp files on success", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tone.wav")

		if err := WriteFile(path, []byte("payload")); err != nil {
			t.Fatalf("WriteFile returned error: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 || entries[0].Name() != "tone.wav" {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Fatalf("unexpected directory contents: %v", names)
		}
	})
}
