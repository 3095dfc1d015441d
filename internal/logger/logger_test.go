package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerProductionUsesJSON(t *testing.T) {
	logger := NewLogger("info", "production")
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewLoggerDevelopmentUsesText(t *testing.T) {
	logger := NewLogger("debug", "development")
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	logger := NewLogger("shouting", "development")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
