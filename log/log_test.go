package log

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"modkeys/modifiers"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("MODKEYS_LOG_PATH", "/tmp/modkeys-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/modkeys-env-log" {
		t.Errorf("got %q, want /tmp/modkeys-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("MODKEYS_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestInitCreatesFiles(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"diagnostics_log.txt", "keys_log.txt"} {
		path := filepath.Join(tmp, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

func TestKeyEvent(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	KeyEvent("ctrl+shift+up", modifiers.Of(modifiers.Control, modifiers.Shift))

	data, err := os.ReadFile(filepath.Join(tmp, "keys_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "ctrl+shift+up") || !strings.Contains(line, "CONTROL | SHIFT") {
		t.Errorf("keys_log.txt missing key or modifiers, got: %q", line)
	}
	// format: "2006-01-02 15:04:05\t[pid]\tkey\tbits\tmods\n"
	if strings.Count(line, "\t") != 4 {
		t.Errorf("expected tab-separated format, got: %q", line)
	}

	diag, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(diag), "bits=520") || !strings.Contains(string(diag), "shift=true") {
		t.Errorf("diagnostics_log.txt missing structured fields, got: %q", diag)
	}
}

func TestNoopBeforeInit(t *testing.T) {
	tmp := setupLogDir(t)

	KeyEvent("a", modifiers.Empty())
	HotkeyFired(modifiers.Single(modifiers.Meta))
	Info("ignored")

	if _, err := os.Stat(filepath.Join(tmp, "keys_log.txt")); !os.IsNotExist(err) {
		t.Errorf("keys_log.txt should not exist before Init, stat err = %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}

func TestKeyEventDuringClose(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				KeyEvent("shift+tab", modifiers.Single(modifiers.Shift))
				HotkeyFired(modifiers.Single(modifiers.Meta))
			}
		}()
	}
	Close()
	wg.Wait()

	data, err := os.ReadFile(filepath.Join(tmp, "keys_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if line != "" && strings.Count(line, "\t") != 4 {
			t.Errorf("torn keys_log.txt line: %q", line)
		}
	}
}
