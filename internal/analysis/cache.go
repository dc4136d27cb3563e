package analysis

import (
	"sync"

	"github.com/nao1215/sigdec/internal/model"
)

// memo is a bounded, first-in first-out report cache keyed by fingerprint.
type memo struct {
	mu      sync.Mutex
	size    int
	entries map[string]*model.Report
	order   []string
	hits    int
	misses  int
}

func newMemo(size int) *memo {
	return &memo{
		size:    size,
		entries: make(map[string]*model.Report, size),
		order:   make([]string, 0, size),
	}
}

func (m *memo) get(key string) (*model.Report, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.entries[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return report, ok
}

func (m *memo) put(key string, report *model.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		return
	}
	if len(m.order) == m.size {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.entries[key] = report
	m.order = append(m.order, key)
}

// CacheStats reports memo cache usage.
type CacheStats struct {
	Entries int
	Hits    int
	Misses  int
}

func (m *memo) stats() CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return CacheStats{Entries: len(m.entries), Hits: m.hits, Misses: m.misses}
}
