package flamerush

import (
	"slices"
	"time"
)

// Persisted keys.
const (
	KeyCoins        = "coins"
	KeyHighScore    = "highScore"
	KeyCurrentFlame = "currentFlame"
	unlockPrefix    = "color_"
)

// UnlockKey returns the key holding the unlock flag for a cosmetic.
func UnlockKey(name string) string {
	return unlockPrefix + name
}

// Store is a durable string key-value store. Get reports ok=false for absent
// keys; an error is only returned when the backing storage fails.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Run is one finished session, kept as play history by stores that
// implement RunRecorder.
type Run struct {
	ID          string
	Score       int
	CoinsEarned int
	Difficulty  float64
	Flame       string
	StartedAt   time.Time
	EndedAt     time.Time
}

// RunRecorder is implemented by stores that keep a history of finished runs.
type RunRecorder interface {
	RecordRun(run Run) error
}

// RunHistory is implemented by stores that can list recorded runs.
type RunHistory interface {
	TopRuns(limit int) ([]Run, error)
}

// MemoryStore is an in-process Store. It does not survive restarts of the
// program, only of a Session.
type MemoryStore struct {
	values map[string]string
	runs   []Run
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// RecordRun implements RunRecorder.
func (m *MemoryStore) RecordRun(run Run) error {
	m.runs = append(m.runs, run)
	return nil
}

// TopRuns implements RunHistory. Ties keep recording order.
func (m *MemoryStore) TopRuns(limit int) ([]Run, error) {
	runs := slices.Clone(m.runs)
	slices.SortStableFunc(runs, func(a, b Run) int { return b.Score - a.Score })
	if limit >= 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Runs returns the recorded runs, oldest first.
func (m *MemoryStore) Runs() []Run {
	return slices.Clone(m.runs)
}
