package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigOptions(t *testing.T) {
	cfg := Config{Host: "cache.local", Port: "6380", Database: 2, PoolSize: 4}

	opts := cfg.options()

	assert.True(t, cfg.Enabled())
	assert.Equal(t, "cache.local:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
}

func TestConfigDisabled(t *testing.T) {
	assert.False(t, (&Config{}).Enabled())
}
