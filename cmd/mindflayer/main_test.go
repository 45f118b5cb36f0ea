package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lgbarn/mindflayer-go/internal/config"
)

func TestSplitArgsLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple args", "a b c", []string{"a", "b", "c"}},
		{"double quoted string", `"hello world" foo`, []string{"hello world", "foo"}},
		{"single quoted string", `'hello world' foo`, []string{"hello world", "foo"}},
		{"mixed quotes", `"hello world" 'foo bar' baz`, []string{"hello world", "foo bar", "baz"}},
		{"empty string", "", nil},
		{"tabs as separators", "a\tb\tc", []string{"a", "b", "c"}},
		{"single arg", "hello", []string{"hello"}},
		{"multiple spaces", "a   b   c", []string{"a", "b", "c"}},
		{"leading and trailing spaces", "  a b  ", []string{"a", "b"}},
		{"quoted moves", `-moves "e2e4 e7e5"`, []string{"-moves", "e2e4 e7e5"}},
		{"empty quotes", `-o ""`, []string{"-o", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitArgsLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitArgsLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadArgsFile(t *testing.T) {
	t.Run("valid file with args comments and empty lines", func(t *testing.T) {
		path := writeTempFile(t, "args.txt", `# This is a comment
-o output.txt
-moves "e2e4 e7e5"

# Another comment
-D
`)
		got, err := loadArgsFile(path)
		if err != nil {
			t.Fatalf("loadArgsFile() error = %v", err)
		}
		want := []string{"-o", "output.txt", "-moves", "e2e4 e7e5", "-D"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("loadArgsFile() = %v, want %v", got, want)
		}
	})

	t.Run("non-existent file returns error", func(t *testing.T) {
		_, err := loadArgsFile("/nonexistent/path/args.txt")
		if err == nil {
			t.Error("loadArgsFile() expected error for non-existent file, got nil")
		}
	})

	t.Run("empty file returns nil", func(t *testing.T) {
		got, err := loadArgsFile(writeTempFile(t, "empty.txt", ""))
		if err != nil {
			t.Fatalf("loadArgsFile() error = %v", err)
		}
		if got != nil {
			t.Errorf("loadArgsFile() = %v, want nil", got)
		}
	})
}

func TestLoadFileList(t *testing.T) {
	path := writeTempFile(t, "list.txt", "games one.txt\n# skipped\n\n  two.txt  \n")
	got, err := loadFileList(path)
	if err != nil {
		t.Fatalf("loadFileList() error = %v", err)
	}
	want := []string{"games one.txt", "two.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loadFileList() = %v, want %v", got, want)
	}
}

func TestLoadArgsFromFileIfSpecified(t *testing.T) {
	path := writeTempFile(t, "args.txt", "-J\n-perft 2\n")

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"mindflayer", "-s", "-A", path, "games.txt"}
	if err := loadArgsFromFileIfSpecified(); err != nil {
		t.Fatalf("loadArgsFromFileIfSpecified() error = %v", err)
	}
	want := []string{"mindflayer", "-s", "-J", "-perft", "2", "games.txt"}
	if !reflect.DeepEqual(os.Args, want) {
		t.Errorf("os.Args = %v, want %v", os.Args, want)
	}

	os.Args = []string{"mindflayer", "-A", "/nonexistent/args.txt"}
	if err := loadArgsFromFileIfSpecified(); err == nil {
		t.Error("loadArgsFromFileIfSpecified() expected error for missing file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("input", "games.txt").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "input=games.txt") {
		t.Errorf("warn message missing:\n%s", out)
	}

	buf.Reset()
	fallback := newLogger(&buf, "nonsense")
	fallback.Info().Msg("fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Error("unknown level should fall back to info")
	}
}

func TestCloseFiles(t *testing.T) {
	dir := t.TempDir()
	open := func(name string) *os.File {
		t.Helper()
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Create(%s) error: %v", name, err)
		}
		return f
	}

	cfg := config.NewConfig()
	out, dup, logf := open("out.txt"), open("dup.txt"), open("log.txt")
	cfg.OutputFile = out
	cfg.Duplicate.DuplicateFile = dup
	cfg.LogFile = logf

	if err := closeFiles(cfg); err != nil {
		t.Fatalf("closeFiles() error: %v", err)
	}
	for _, f := range []*os.File{out, dup, logf} {
		if _, err := f.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
			t.Errorf("%s still open after closeFiles(): %v", f.Name(), err)
		}
	}
}

func TestCloseFiles_LeavesStandardStreams(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Duplicate.DuplicateFile = &bytes.Buffer{}

	if err := closeFiles(cfg); err != nil {
		t.Fatalf("closeFiles() error: %v", err)
	}
	if _, err := os.Stdout.Stat(); err != nil {
		t.Errorf("stdout closed: %v", err)
	}
	if _, err := os.Stderr.Stat(); err != nil {
		t.Errorf("stderr closed: %v", err)
	}
}
