package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

const (
	saveAttempts = 3
	saveBackoff  = 250 * time.Millisecond
	saveTimeout  = 5 * time.Second
)

// Saver writes app state asynchronously. Saves are fire-and-forget with a
// few retries on a short backoff; a failed save is logged and dropped, never
// surfaced to the caller or rolled back in memory.
type Saver struct {
	db  *DB
	log *slog.Logger
	wg  sync.WaitGroup
}

// NewSaver creates a Saver.
func NewSaver(db *DB, log *slog.Logger) *Saver {
	return &Saver{db: db, log: log}
}

// SaveAsync marshals v and persists it under key in the background.
func (s *Saver) SaveAsync(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("state marshal failed", "key", key, "error", err)
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.save(key, data)
	}()
}

func (s *Saver) save(key string, data []byte) {
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := s.db.SetState(ctx, key, data)
		cancel()
		if err == nil {
			return
		}
		s.log.Warn("state save failed", "key", key, "attempt", attempt, "error", err)
		if attempt < saveAttempts {
			time.Sleep(time.Duration(attempt) * saveBackoff)
		}
	}
	s.log.Error("state save abandoned", "key", key)
}

// Wait blocks until all in-flight saves settle. Called on shutdown and by
// tests.
func (s *Saver) Wait() {
	s.wg.Wait()
}
