package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		EndpointConfigs: []EndpointConfig{
			{Path: "/resume/pdf", Method: "GET", Limit: 2, Window: time.Hour, Burst: 2},
			{Path: "/resume/skills/", Method: "POST", Limit: 3, Window: time.Hour, Burst: 3},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

func TestLimiter_EndpointBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("127.0.0.1", "/resume/pdf", "GET")
		require.True(t, allowed, "request %d", i+1)
	}

	allowed, info := l.Allow("127.0.0.1", "/resume/pdf", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("a", "/resume/pdf", "GET")
	l.Allow("a", "/resume/pdf", "GET")

	allowed, _ := l.Allow("b", "/resume/pdf", "GET")
	assert.True(t, allowed)
}

func TestLimiter_PrefixSharesBucket(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("c", "/resume/skills/technical", "POST")
	l.Allow("c", "/resume/skills/soft", "POST")
	l.Allow("c", "/resume/skills/tools", "POST")

	allowed, _ := l.Allow("c", "/resume/skills/technical", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_UnlimitedAndWhitelisted(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
		allowed, _ = l.Allow("10.0.0.1", "/resume/pdf", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	allowed, info := l.Allow("x", "/resume/pdf", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 0, info.Limit)
}

func TestLimiter_Cleanup(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("old", "/resume", "GET")
	require.Equal(t, 1, l.Len())

	l.cleanup(time.Now().Add(time.Second))
	assert.Equal(t, 0, l.Len())
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Second, CleanupInterval: time.Minute})
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	assert.Equal(t, "/resume/pdf", MatchEndpoint("/resume/pdf", "GET", configs).Path)
	assert.Equal(t, 0, MatchEndpoint("/health", "GET", configs).Limit)
	assert.Nil(t, MatchEndpoint("/resume", "GET", configs))
	assert.Nil(t, MatchEndpoint("/resume/fields/name", "GET", configs))
}

func TestMatchEndpoint_WritesUseWriteTier(t *testing.T) {
	configs := DefaultEndpointConfigs()

	writes := []struct{ method, path string }{
		{"PUT", "/resume/fields/name"},
		{"POST", "/resume/projects/0/tech"},
		{"DELETE", "/resume/projects/0/tech/1"},
		{"POST", "/resume/skills/tools"},
		{"DELETE", "/resume/skills/tools/0"},
		{"POST", "/resume/education"},
		{"PUT", "/resume/experience/0"},
		{"DELETE", "/resume/links/2"},
		{"PUT", "/resume/experience/0/bullets/1"},
	}
	for _, w := range writes {
		c := MatchEndpoint(w.path, w.method, configs)
		require.NotNil(t, c, "%s %s", w.method, w.path)
		assert.Equal(t, 120, c.Limit, "%s %s", w.method, w.path)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.True(t, cfg.Whitelist["2.2.2.2"])
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	assert.False(t, LoadConfig().Enabled)
}
