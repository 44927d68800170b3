package agent

import (
	"sync"
	"time"
)

// DefaultMemoryLimit caps how many interactions an agent remembers.
const DefaultMemoryLimit = 20

// MemoryEntry records one Process call: the task, the outcome, and when.
// Err is empty for successful calls.
type MemoryEntry struct {
	Task      Task
	Response  string
	Err       string
	Timestamp time.Time
}

// Memory is a bounded interaction history. Appending past the cap drops
// the oldest entry. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []MemoryEntry
	limit   int
}

// NewMemory creates a bounded memory. Non-positive limits fall back to
// DefaultMemoryLimit.
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &Memory{
		entries: make([]MemoryEntry, 0, limit),
		limit:   limit,
	}
}

// Add appends an entry, evicting the oldest when the cap is reached.
func (m *Memory) Add(entry MemoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) >= m.limit {
		m.entries = m.entries[1:]
	}
	m.entries = append(m.entries, entry)
}

// Entries returns a copy of the history, oldest first.
func (m *Memory) Entries() []MemoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]MemoryEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns how many entries are currently held.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
