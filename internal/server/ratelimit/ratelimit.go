// Package ratelimit limits requests per client and endpoint tier.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	RetryAfter time.Duration
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter keeps one token bucket per client and endpoint tier.
type Limiter struct {
	config *Config

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stop chan struct{}
	once sync.Once
}

// NewLimiter creates a rate limiter and starts its cleanup loop when enabled.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stop:     make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID to path is allowed.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}

	ec := MatchEndpoint(path, method, l.config.EndpointConfigs)
	var key string
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
		key = clientID + ":default"
	} else {
		key = clientID + ":" + ec.Method + ":" + ec.Path
	}

	if ec.Limit <= 0 || ec.Window <= 0 {
		return true, Info{Allowed: true}
	}

	every := rate.Limit(float64(ec.Limit) / ec.Window.Seconds())
	if l.get(key, every, ec).Allow() {
		return true, Info{Allowed: true, Limit: ec.Limit}
	}

	retry := time.Duration(math.Ceil(1/float64(every))) * time.Second
	return false, Info{Allowed: false, Limit: ec.Limit, RetryAfter: retry}
}

func (l *Limiter) get(key string, r rate.Limit, ec *EndpointConfig) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cl, ok := l.limiters[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	burst := ec.Burst
	if burst <= 0 {
		burst = ec.Limit
	}
	cl := &clientLimiter{limiter: rate.NewLimiter(r, burst), lastAccess: time.Now()}
	l.limiters[key] = cl
	return cl.limiter
}

// Len returns the number of tracked client buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now().Add(-2 * l.config.CleanupInterval))
		case <-l.stop:
			return
		}
	}
}

// cleanup drops buckets not used since cutoff.
func (l *Limiter) cleanup(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, cl := range l.limiters {
		if cl.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}
