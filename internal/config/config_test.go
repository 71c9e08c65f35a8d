package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnLogLevelChange(t *testing.T) {
	var cfg Config

	var got []string
	cfg.OnLogLevelChange(func(level string) { got = append(got, level) })

	cfg.notifyLogLevel("debug")
	cfg.notifyLogLevel("warn")

	assert.Equal(t, []string{"debug", "warn"}, got)
}

func TestOnLogLevelChangeReplacesHook(t *testing.T) {
	var cfg Config

	var first, second int
	cfg.OnLogLevelChange(func(string) { first++ })
	cfg.OnLogLevelChange(func(string) { second++ })

	cfg.notifyLogLevel("debug")

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestNotifyLogLevelWithoutHook(t *testing.T) {
	var cfg Config
	assert.NotPanics(t, func() { cfg.notifyLogLevel("debug") })
}
