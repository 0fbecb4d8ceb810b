// Package ratelimit throttles API clients with per-endpoint token buckets.
// The expensive endpoints (PDF analysis, LLM chat, job-board fan-out) get
// tight hourly tiers; everything else falls under a generous default.
package ratelimit

import (
	"sync"
	"time"
)

// bucket refills continuously at rate tokens per second up to capacity.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	last     time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		last:     time.Now(),
	}
}

// take credits the elapsed refill, then consumes one token if available.
// remaining is the whole tokens left afterwards, reset the instant the
// bucket is full again, and wait how long until the next token when the
// request was denied.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time, wait time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.rate)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	} else {
		wait = time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, remaining, reset, wait
}

// Info describes a limit decision, for response headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// entry pairs a bucket with its last use so idle clients can be evicted.
type entry struct {
	bucket *bucket
	seen   time.Time
}

// idleEviction is how long a client+endpoint bucket may sit unused before
// the janitor drops it.
const idleEviction = time.Hour

// Limiter hands out one token bucket per client+endpoint pair and evicts
// idle buckets in the background. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	cfg     *Config
	buckets map[string]*entry
	janitor *time.Ticker
	done    chan struct{}
}

// NewLimiter builds a limiter for the given configuration. A nil config
// enables limiting with the built-in defaults.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = defaultConfig()
	}

	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*entry),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.janitor = time.NewTicker(cfg.CleanupInterval)
		l.done = make(chan struct{})
		go l.run()
	}
	return l
}

// Allow decides whether the client may hit the endpoint now. The health
// check is never limited. Denied requests carry a RetryAfter hint.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{}
	}
	if path == "/health" && method == "GET" {
		return true, Info{}
	}

	tier := l.tierFor(path, method)
	if tier.Limit <= 0 {
		return true, Info{}
	}

	b := l.bucketFor(clientID+" "+method+" "+path, tier)
	allowed, remaining, reset, wait := b.take()

	return allowed, Info{
		Limit:      tier.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: wait,
	}
}

// tierFor resolves the endpoint tier: exact path+method first, then prefix
// tiers (paths ending in "/"), then the global default.
func (l *Limiter) tierFor(path, method string) EndpointConfig {
	for _, t := range l.cfg.Tiers {
		if t.Method == method && t.Path == path {
			return t
		}
	}
	for _, t := range l.cfg.Tiers {
		if t.Method == method && isPrefixTier(t.Path) && hasPathPrefix(path, t.Path) {
			return t
		}
	}
	return EndpointConfig{Limit: l.cfg.DefaultLimit, Window: l.cfg.DefaultWindow}
}

func (l *Limiter) bucketFor(key string, tier EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.buckets[key]
	if !ok {
		burst := tier.Burst
		if burst <= 0 {
			burst = tier.Limit
		}
		e = &entry{bucket: newBucket(burst, float64(tier.Limit)/tier.Window.Seconds())}
		l.buckets[key] = e
	}
	e.seen = time.Now()
	return e.bucket
}

func (l *Limiter) run() {
	for {
		select {
		case <-l.janitor.C:
			l.evictIdle()
		case <-l.done:
			return
		}
	}
}

func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-idleEviction)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, e := range l.buckets {
		if e.seen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the eviction goroutine.
func (l *Limiter) Stop() {
	if l.janitor != nil {
		l.janitor.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
