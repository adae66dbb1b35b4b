package cache

import (
	"io"
	"testing"

	"go-doctors-portal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{}, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { client.Close() })
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	client, err := NewRedisClient(config.RedisConfig{Host: host, Port: port}, quietLogger())
	assert.Error(t, err)
	assert.Nil(t, client)
}
