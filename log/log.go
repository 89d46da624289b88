package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"modkeys/modifiers"
)

const appName = "modkeys"

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	keysFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absPath(flagPath)
	}

	// Priority 2: MODKEYS_LOG_PATH environment variable
	if envPath := os.Getenv("MODKEYS_LOG_PATH"); envPath != "" {
		return absPath(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	keysPath := filepath.Join(dir, "keys_log.txt")
	keysFile, err = os.OpenFile(keysPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if keysFile != nil {
		keysFile.Close()
		keysFile = nil
	}
	logReady = false
}

// emit runs fn under logMu while the log files are open, so that no write
// can land on a file Close is releasing.
func emit(fn func(l *zerolog.Logger)) {
	logMu.Lock()
	defer logMu.Unlock()
	if !logReady {
		return
	}
	fn(&diagLog)
}

func Info(msg string) {
	emit(func(l *zerolog.Logger) { l.Info().Msg(msg) })
}

func Error(msg string) {
	emit(func(l *zerolog.Logger) { l.Error().Msg(msg) })
}

func Errorf(format string, args ...any) {
	emit(func(l *zerolog.Logger) { l.Error().Msg(fmt.Sprintf(format, args...)) })
}

func Warn(msg string) {
	emit(func(l *zerolog.Logger) { l.Warn().Msg(msg) })
}

func Warnf(format string, args ...any) {
	emit(func(l *zerolog.Logger) { l.Warn().Msg(fmt.Sprintf(format, args...)) })
}

// KeyEvent records one key press with its modifier snapshot, both in the
// diagnostics log and as a line in keys_log.txt.
func KeyEvent(key string, mods modifiers.Set) {
	emit(func(l *zerolog.Logger) {
		l.Debug().
			Str("key", key).
			Str("mods", mods.String()).
			Uint32("bits", mods.Bits()).
			Bool("shift", mods.Shift()).
			Bool("ctrl", mods.Ctrl()).
			Bool("alt", mods.Alt()).
			Bool("meta", mods.Meta()).
			Msg("key")

		line := fmt.Sprintf("%s\t[%d]\t%s\t%#04x\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, key, mods.Bits(), mods)
		keysFile.WriteString(line)
	})
}

func HotkeyFired(mods modifiers.Set) {
	emit(func(l *zerolog.Logger) {
		l.Info().
			Str("mods", mods.String()).
			Uint32("bits", mods.Bits()).
			Msg("hotkey_fired")
	})
}

func SessionStart(version string, binding modifiers.Set) {
	emit(func(l *zerolog.Logger) {
		l.Info().
			Str("version", version).
			Str("binding", binding.String()).
			Msg("session_start")
	})
}

func SessionEnd(count int) {
	emit(func(l *zerolog.Logger) {
		l.Info().
			Int("count", count).
			Msg("session_end")
	})
}
