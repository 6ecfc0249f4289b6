package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{DBName: "mappins"}.WithDefaults()
	assert.Equal(t, int16(DefaultTimeout), cfg.ConnectionTimeout)
	assert.Equal(t, int16(DefaultTimeout), cfg.QueryTimeout)

	cfg = Config{ConnectionTimeout: 100, QueryTimeout: 200}.WithDefaults()
	assert.Equal(t, int16(100), cfg.ConnectionTimeout)
	assert.Equal(t, int16(200), cfg.QueryTimeout)
}
