package bootstrap

import (
	"testing"

	"go-doctors-portal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger(config.AppConfig{Env: "production", LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log = NewLogger(config.AppConfig{Env: "development", LogLevel: "loud"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestCloseWithoutResources(t *testing.T) {
	app := &App{Log: logrus.New()}
	assert.NotPanics(t, app.Close)
}
