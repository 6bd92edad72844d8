package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pomodoro/internal/core/session"
)

const sessionHeader = "===== Pomodoro Session ====="

// SessionLog is the append-only plain-text session log.
type SessionLog struct {
	mu   sync.Mutex
	path string
}

// NewSessionLog returns a log writing to path. The file is created on the
// first Record.
func NewSessionLog(path string) *SessionLog {
	return &SessionLog{path: path}
}

// Path returns the log file location.
func (log *SessionLog) Path() string {
	return log.path
}

// Record appends one entry block and syncs it to disk.
func (log *SessionLog) Record(entry session.Entry) error {
	log.mu.Lock()
	defer log.mu.Unlock()

	if dir := filepath.Dir(log.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(log.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}

	if _, err := file.WriteString(entry.Format()); err != nil {
		_ = file.Close()
		return fmt.Errorf("append session log: %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("sync session log: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close session log: %w", err)
	}
	return nil
}

// Tail returns the last n entry blocks, oldest first. A missing file yields
// no blocks.
func (log *SessionLog) Tail(n int) ([]string, error) {
	log.mu.Lock()
	defer log.mu.Unlock()

	file, err := os.Open(log.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open session log: %w", err)
	}
	defer file.Close()

	var (
		blocks  []string
		current strings.Builder
	)
	flush := func() {
		block := strings.TrimRight(current.String(), "\n")
		if block != "" {
			blocks = append(blocks, block)
		}
		current.Reset()
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == sessionHeader {
			flush()
		}
		if line == "" && current.Len() == 0 {
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session log: %w", err)
	}
	flush()

	if n > 0 && len(blocks) > n {
		blocks = blocks[len(blocks)-n:]
	}
	return blocks, nil
}
