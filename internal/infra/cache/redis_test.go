package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, server.Addr(), client.Options().Addr)
}

func TestNewRedisClient_Errors(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{URL: "not a url"})
	assert.ErrorContains(t, err, "parse redis url")

	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err = NewRedisClient(&config.RedisConfig{URL: "redis://" + addr})
	assert.ErrorContains(t, err, "ping redis")
}
