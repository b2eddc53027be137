// Package debug provides opt-in diagnostic logging, enabled with OT_DEBUG.
// Output goes to a size-rotated log file under the user cache directory so
// it never pollutes the report printed on stdout.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once   sync.Once
	logger *log.Logger
)

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return os.Getenv("OT_DEBUG") != ""
}

// Logf writes a formatted message to the debug log. No-op unless OT_DEBUG is set.
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	once.Do(initLogger)
	if logger == nil {
		return
	}
	_ = logger.Output(2, fmt.Sprintf(format, args...))
}

func initLogger() {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fall back to stderr rather than dropping messages.
		logger = log.New(os.Stderr, "otq: ", log.LstdFlags)
		return
	}
	logger = log.New(&lumberjack.Logger{
		Filename:   filepath.Join(cacheDir, "otq", "debug.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}, "", log.LstdFlags|log.Lmicroseconds)
}
