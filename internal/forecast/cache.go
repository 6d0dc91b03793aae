package forecast

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/theirongolddev/venuecast/internal/model"
)

// Memo caches Generate results keyed by a structural hash of the plan.
// Generate is deterministic, so entries never need invalidation: a config
// that differs in any field hashes to a new key, and recomputing from
// scratch is always correct if the hash cannot be taken.
type Memo struct {
	mu      sync.RWMutex
	entries map[uint64][]model.WeeklyProjection
}

// NewMemo returns an empty forecast cache, safe for concurrent use.
func NewMemo() *Memo {
	return &Memo{entries: make(map[uint64][]model.WeeklyProjection)}
}

// Generate returns the cached series for cfg, generating and storing it on
// a miss. Callers receive an independent copy each time, so mutating a
// returned series cannot corrupt the cache.
func (m *Memo) Generate(cfg model.ProjectionConfig) ([]model.WeeklyProjection, error) {
	key, err := hashstructure.Hash(cfg, hashstructure.FormatV2, nil)
	if err != nil {
		// Unhashable config just skips the cache.
		return Generate(cfg)
	}

	m.mu.RLock()
	cached, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return cloneSeries(cached), nil
	}

	series, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.entries[key] = series
	m.mu.Unlock()

	return cloneSeries(series), nil
}

// Len returns the number of cached forecasts.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func cloneSeries(series []model.WeeklyProjection) []model.WeeklyProjection {
	out := make([]model.WeeklyProjection, len(series))
	copy(out, series)
	for i := range out {
		out[i].Revenue = cloneStreamMap(series[i].Revenue)
		out[i].COGS = cloneStreamMap(series[i].COGS)
	}
	return out
}

func cloneStreamMap(src map[model.RevenueStream]float64) map[model.RevenueStream]float64 {
	if src == nil {
		return nil
	}
	dst := make(map[model.RevenueStream]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
