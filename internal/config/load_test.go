// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
paths = ["src", "work"]
tools = ["git"]
git-dir = ".git"
git-name = "Git"
git-commands = ["git pull --rebase"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	raw, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	cfg, err := FromRaw(raw)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.RootPaths, []string{"src", "work"}) {
		t.Errorf("RootPaths = %#v", cfg.RootPaths)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].DisplayName != "Git" {
		t.Errorf("Tools = %+v", cfg.Tools)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestLoadFileParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("tools = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() succeeded on invalid TOML")
	}
}

func TestWriteSampleRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("test redirects XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := WriteSample(false)
	if err != nil {
		t.Fatalf("WriteSample() error = %v", err)
	}

	raw, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	cfg, err := FromRaw(raw)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if len(cfg.Tools) == 0 || len(cfg.RootPaths) == 0 {
		t.Errorf("sample config is empty: %+v", cfg)
	}

	// A second write must refuse to clobber the file.
	if _, err := WriteSample(false); err == nil {
		t.Error("WriteSample() overwrote an existing file")
	}
	if _, err := WriteSample(true); err != nil {
		t.Errorf("WriteSample(force) error = %v", err)
	}
}
