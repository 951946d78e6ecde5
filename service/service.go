// Package service glues the journal to the statistics engine and memoizes
// results per (account, date range) with a short TTL. The cache is
// invalidated whenever the trade set changes, so dashboards hammering the
// same range recompute at most once per TTL window.
package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradelytix/tradelytix/journal"
	"github.com/tradelytix/tradelytix/propfirm"
	"github.com/tradelytix/tradelytix/stats"
)

// DefaultTTL bounds staleness for memoized results.
const DefaultTTL = 30 * time.Second

type cacheKey struct {
	account  string
	from, to time.Time
}

type cacheEntry struct {
	result  stats.Result
	expires time.Time
}

// Stats serves computed statistics over a journal.
type Stats struct {
	jrnl journal.Journal
	log  *zap.Logger
	ttl  time.Duration

	mu    sync.Mutex
	cache map[cacheKey]cacheEntry

	// now is swappable for tests.
	now func() time.Time
}

// Option configures a Stats service.
type Option func(*Stats)

// WithTTL overrides the memoization window. Zero disables caching.
func WithTTL(ttl time.Duration) Option {
	return func(s *Stats) { s.ttl = ttl }
}

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(s *Stats) { s.log = log }
}

// New wires a Stats service over the journal.
func New(jrnl journal.Journal, opts ...Option) *Stats {
	s := &Stats{
		jrnl:  jrnl,
		log:   zap.NewNop(),
		ttl:   DefaultTTL,
		cache: make(map[cacheKey]cacheEntry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result computes (or serves memoized) statistics for the account's trades
// closed in [from, to).
func (s *Stats) Result(account string, from, to time.Time) (stats.Result, error) {
	key := cacheKey{account, from, to}

	s.mu.Lock()
	if e, ok := s.cache[key]; ok && s.now().Before(e.expires) {
		s.mu.Unlock()
		s.log.Debug("stats cache hit", zap.String("account", account))
		return e.result, nil
	}
	s.mu.Unlock()

	recs, err := s.jrnl.ListTrades(account, from, to)
	if err != nil {
		return stats.Result{}, err
	}
	r := stats.Compute(journal.Trades(recs))
	s.log.Info("stats recomputed",
		zap.String("account", account),
		zap.Int("trades", r.TotalTrades))

	if s.ttl > 0 {
		s.mu.Lock()
		s.cache[key] = cacheEntry{result: r, expires: s.now().Add(s.ttl)}
		s.mu.Unlock()
	}
	return r, nil
}

// Zella computes the composite score for the account's trades.
func (s *Stats) Zella(account string, from, to time.Time) (stats.ZellaScore, error) {
	r, err := s.Result(account, from, to)
	if err != nil {
		return stats.ZellaScore{}, err
	}
	return r.Zella(), nil
}

// Evaluate runs the prop-firm phase evaluation over the account's full
// history. Evaluations are not memoized: breach detection must never serve
// a stale verdict.
func (s *Stats) Evaluate(account string, rules propfirm.PhaseRules) (propfirm.Evaluation, error) {
	recs, err := s.jrnl.ListTrades(account, time.Time{}, time.Time{})
	if err != nil {
		return propfirm.Evaluation{}, err
	}
	e := propfirm.Evaluate(rules, journal.Trades(recs))
	if !e.Passed {
		s.log.Warn("phase rules breached",
			zap.String("account", account),
			zap.String("phase", e.Phase),
			zap.Int("violations", len(e.Violations)))
	}
	return e, nil
}

// Invalidate drops every memoized result. Call after any journal write.
func (s *Stats) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[cacheKey]cacheEntry)
}
