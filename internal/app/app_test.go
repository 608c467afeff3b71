package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestStart_UsesConfigAndPrefs(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "reelboard.log")
	cfgPath := filepath.Join(dir, "config.toml")
	prefsPath := filepath.Join(dir, "prefs.toml")
	writeFile(t, cfgPath, "log_path = \""+logPath+"\"\ngenerate_delay_ms = 250\nscroll_step = 5\n")
	writeFile(t, prefsPath, "theme = \"Slate\"\n")

	s, err := start(Options{ConfigPath: cfgPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.closer.Close()

	if s.theme != "Slate" {
		t.Fatalf("theme = %q, want Slate", s.theme)
	}
	if s.cfg.GenerateDelay != 250*time.Millisecond {
		t.Fatalf("GenerateDelay = %v, want 250ms", s.cfg.GenerateDelay)
	}
	if s.cfg.ScrollStep != 5 {
		t.Fatalf("ScrollStep = %d, want 5", s.cfg.ScrollStep)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestStart_ThemeFlagOverridesPrefs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	prefsPath := filepath.Join(dir, "prefs.toml")
	writeFile(t, cfgPath, "log_path = \""+filepath.Join(dir, "r.log")+"\"\n")
	writeFile(t, prefsPath, "theme = \"Slate\"\n")

	s, err := start(Options{ConfigPath: cfgPath, PrefsPath: prefsPath, Theme: "Midnight"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.closer.Close()
	if s.theme != "Midnight" {
		t.Fatalf("theme = %q, want Midnight", s.theme)
	}
}

func TestStart_UnknownThemeFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, "log_path = \""+filepath.Join(dir, "r.log")+"\"\n")

	s, err := start(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.toml"), Theme: "Dracula"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.closer.Close()
	if s.theme != "Studio" {
		t.Fatalf("theme = %q, want Studio", s.theme)
	}
}

func TestStart_CorruptPrefsAreIgnored(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	prefsPath := filepath.Join(dir, "prefs.toml")
	writeFile(t, cfgPath, "log_path = \""+filepath.Join(dir, "r.log")+"\"\n")
	writeFile(t, prefsPath, "theme = [broken")

	s, err := start(Options{ConfigPath: cfgPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.closer.Close()
	if s.theme != "Studio" {
		t.Fatalf("theme = %q, want Studio", s.theme)
	}
}

func TestStart_BadConfigIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeFile(t, cfgPath, "log_format = \"xml\"\n")

	if _, err := start(Options{ConfigPath: cfgPath}); err == nil {
		t.Fatalf("expected error for unsupported log format")
	}
}
