package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func TestInputAdapter_ReadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	want := writeInput(t, dir, "02.txt", "Game 1: 1 red\n")

	adapter := NewInputAdapter(dir, nil)
	text, source, err := adapter.Read(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if text != "Game 1: 1 red\n" {
		t.Errorf("text = %q", text)
	}
	if source != want {
		t.Errorf("source = %q, want %q", source, want)
	}
}

func TestInputAdapter_ReadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "sample.txt", "1abc2\n")

	adapter := NewInputAdapter(t.TempDir(), nil)
	text, source, err := adapter.Read(context.Background(), 1, path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if text != "1abc2\n" || source != path {
		t.Errorf("Read() = (%q, %q)", text, source)
	}
}

func TestInputAdapter_ReadStdin(t *testing.T) {
	adapter := NewInputAdapter("", strings.NewReader("treb7uchet"))

	text, source, err := adapter.Read(context.Background(), 1, "-")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if text != "treb7uchet" || source != "stdin" {
		t.Errorf("Read() = (%q, %q)", text, source)
	}
}

func TestInputAdapter_ReadMissing(t *testing.T) {
	dir := t.TempDir()
	adapter := NewInputAdapter(dir, nil)

	_, _, err := adapter.Read(context.Background(), 5, "")
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(err.Error(), "input not found") {
		t.Errorf("error = %q, want 'input not found'", err)
	}
}

func TestInputAdapter_ReadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "01.txt", "1\n")

	adapter := NewInputAdapter("elsewhere", nil)
	text, _, err := adapter.ReadFromDir(context.Background(), dir, 1)
	if err != nil {
		t.Fatalf("ReadFromDir failed: %v", err)
	}
	if text != "1\n" {
		t.Errorf("text = %q", text)
	}
}

func TestInputAdapter_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "01.txt", "1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewInputAdapter(dir, nil).Read(ctx, 1, "")
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNewInputAdapter_DefaultDir(t *testing.T) {
	if got := NewInputAdapter("", nil).inputDir; got != "inputs" {
		t.Errorf("inputDir = %q, want inputs", got)
	}
}

func TestInputAdapter_ReadStdinTwice(t *testing.T) {
	adapter := NewInputAdapter("", strings.NewReader("two1nine\n"))

	for i := 0; i < 2; i++ {
		text, source, err := adapter.Read(context.Background(), 1, "-")
		if err != nil {
			t.Fatalf("read %d failed: %v", i+1, err)
		}
		if text != "two1nine\n" || source != "stdin" {
			t.Errorf("read %d = (%q, %q)", i+1, text, source)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestInputAdapter_ReadStdinError(t *testing.T) {
	adapter := NewInputAdapter("", failingReader{})

	for i := 0; i < 2; i++ {
		_, _, err := adapter.Read(context.Background(), 1, "-")
		if err == nil || !strings.Contains(err.Error(), "failed to read stdin") {
			t.Errorf("read %d error = %v, want stdin failure", i+1, err)
		}
	}
}
