package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	debugMu   sync.Mutex
	debugOnce sync.Once
	debugFile *os.File
	logsDir   string
)

// ConfigureDebug enables Debug and points it at dir. Calling it again with a
// different dir reopens the log there on the next Debug call.
func ConfigureDebug(dir string) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile != nil {
		debugFile.Close()
		debugFile = nil
	}
	logsDir = dir
	debugOnce = sync.Once{}
}

// Debug appends a timestamped line to the current debug log.
// It is a no-op until ConfigureDebug has been called.
func Debug(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if logsDir == "" {
		return
	}

	debugOnce.Do(func() {
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return
		}
		name := fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405"))
		f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		debugFile = f
	})

	if debugFile == nil {
		return
	}
	fmt.Fprintf(debugFile, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// CleanupLogs removes all but the newest keep debug logs from the logs dir.
func CleanupLogs(keep int) {
	debugMu.Lock()
	dir := logsDir
	debugMu.Unlock()

	if dir == "" {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "debug-") && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, e.Name())
		}
	}
	if len(logs) <= keep {
		return
	}

	// Names embed the timestamp, so lexical order is chronological.
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		os.Remove(filepath.Join(dir, name))
	}
}
